package parameter

// MasterVolume is the linear gain applied to every cue
const MasterVolume = 0.8
