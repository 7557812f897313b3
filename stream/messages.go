package stream

// Command types understood by a Controller.
const (
	CommandPlay        = "play"
	CommandPause       = "pause"
	CommandStop        = "stop"
	CommandStatus      = "status"
	CommandSeek        = "seek"
	CommandLoop        = "loop"
	CommandAdd         = "add"
	CommandInsert      = "insert"
	CommandRemove      = "remove"
	CommandSetFrame    = "set-frame"
	CommandSetSound    = "set-sound"
	CommandSetDuration = "set-duration"
)

// Command is a control message for the movie. Durations are in seconds and
// textures and sounds are referred to by library name.
type Command struct {
	Type     string  `json:"type"`
	Index    int     `json:"index"`
	Duration float64 `json:"duration,omitempty"`
	Texture  string  `json:"texture,omitempty"`
	Sound    string  `json:"sound,omitempty"`
	Loop     bool    `json:"loop,omitempty"`
}

// Status reports the playback state. Times are in seconds.
type Status struct {
	CurrentFrame  int     `json:"currentFrame"`
	NumFrames     int     `json:"numFrames"`
	Elapsed       float64 `json:"elapsed"`
	TotalDuration float64 `json:"totalDuration"`
	Playing       bool    `json:"playing"`
	Loop          bool    `json:"loop"`
}

// Reply answers a Command received over MQTT or HTTP.
type Reply struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}
