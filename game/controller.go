package game

// ChangeDirection applies input unless it reverses the current heading of a multi-segment snake
// Returns whether the direction was accepted
func ChangeDirection(s *Snake, input Direction) bool {
	if s.Direction() != input.Opposite() || s.Size() == 1 {
		s.SetDirection(input)
		return true
	}
	return false
}
