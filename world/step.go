package world

// Step advances the state by one fixed frame. The returned State shares the
// platform slice with s but never writes to s's coin slice, so s remains a
// valid snapshot of the previous frame.
//
// Phases run in a fixed order: horizontal movement, gravity, landing, jump,
// coin pickup, respawn, camera.
func Step(s State, c Controls, t Tuning) (State, Events) {
	var ev Events

	s.Player = moveHorizontal(s.Player, c, t)
	s.Player = integrate(s.Player, t)
	s.Player, s.OnGround = land(s.Player, s.Platforms, t)
	if s.OnGround {
		ev.Landed = true
	}
	s = jump(s, c, t, &ev)
	s = collect(s, t, &ev)
	s = respawn(s, t, &ev)
	s.Camera = follow(s.Camera, s.Player, t)

	return s, ev
}
