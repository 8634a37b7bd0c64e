package catalog

func entries() map[ID]entry {
	return map[ID]entry{
		ChainOfIntegrators: chainOfIntegrators(),
		Pedestrian:         pedestrian(),
		PedestrianARX:      pedestrianARX(),
		Lorenz:             lorenz(),
		Lorenz2D:           lorenz2D(),
		NARX:               narx(),
		Square:             square(),
		Bicycle:            bicycle(),
		BicycleHO:          bicycleHO(),
		CSTRDiscr:          cstrDiscr(),
		Tank:               tank(6, []float64{2, 4, 4, 2, 10, 4}),
		Tank30:             tank(30, fill(30, 2)),
		Tank60:             tank(60, fill(60, 2)),

		TestSys:    testSys(),
		TestSys2:   testSys2(),
		MockSys:    mockSys(),
		MockSysARX: mockSysARX(),
		NARXEx1:    narxEx1(),
		NARXEx2:    narxEx2(),
	}
}
