package parameter

// NudgeStepFloat is how far one arrow or WASD press moves the steering target (world units)
const NudgeStepFloat = 60.0
