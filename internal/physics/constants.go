package physics

const DefaultGravity = 9.81
