package world

// collect removes every coin strictly inside the pickup radius and scores one
// point per coin. Coins are walked from the back so removal never skips one.
func collect(s State, t Tuning, ev *Events) State {
	var kept []Coin
	copied := false
	for i := len(s.Coins) - 1; i >= 0; i-- {
		coin := s.Coins[i]
		if s.Player.Position.Sub(coin.Position).Len() >= t.PickupRadius {
			continue
		}
		if !copied {
			kept = append([]Coin(nil), s.Coins...)
			copied = true
		}
		kept = append(kept[:i], kept[i+1:]...)
		s.Score++
		ev.Collected = append(ev.Collected, coin)
		ev.ScoreChanged = true
	}
	if copied {
		s.Coins = kept
	}
	return s
}

// respawn returns a player that fell below the threshold to the spawn point
// and clears the score. Collected coins stay collected.
func respawn(s State, t Tuning, ev *Events) State {
	if s.Player.Position.Y() >= t.FallThreshold {
		return s
	}
	s.Player.Position = t.Spawn
	s.Player.VelocityY = 0
	if s.Score != 0 {
		ev.ScoreChanged = true
	}
	s.Score = 0
	ev.Respawned = true
	return s
}
