package flappy

// UpdateScore marks every unpassed obstacle whose trailing edge the body has
// fully cleared and returns how many were marked. The Passed flag makes this
// idempotent per obstacle.
func UpdateScore(body PlayerBody, f *ObstacleField, pipeWidth float64) int {
	scored := 0
	for i := range f.Obstacles {
		o := &f.Obstacles[i]
		if !o.Passed && body.X > o.X+pipeWidth {
			o.Passed = true
			scored++
		}
	}
	return scored
}
