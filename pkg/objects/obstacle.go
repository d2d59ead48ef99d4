package objects

// ObstacleData is a wall spanning Width lanes starting at Index.
type ObstacleData struct {
	Time     float32      `json:"time"`
	Index    int32        `json:"index"`
	ID       int32        `json:"id"`
	Type     ObstacleType `json:"type"`
	Duration float32      `json:"duration"`
	Width    int32        `json:"width"`
}

// Mirror reflects the obstacle so that its full span lands on the opposite
// side of a field of lanes lanes.
func (o *ObstacleData) Mirror(lanes int32) {
	o.Index = lanes - o.Width - o.Index
}
