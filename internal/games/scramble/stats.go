package scramble

// Stats tallies finished rounds for the lifetime of a game instance.
type Stats struct {
	Rounds     int
	Wins       int
	Losses     int
	Streak     int // consecutive wins up to the last round
	BestStreak int
}

// Record adds the outcome of a finished round.
func (s *Stats) Record(won bool) {
	s.Rounds++
	if won {
		s.Wins++
		s.Streak++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
		return
	}
	s.Losses++
	s.Streak = 0
}
