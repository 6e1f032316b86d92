package config

// ClipDef describes how one animation state plays back.
type ClipDef struct {
	FrameCount int
	Speed      float64 // seconds per frame
	// Locked clips play to their last frame before physics can change the
	// state again.
	Locked bool
	// OnComplete is the state a locked clip hands over to when it finishes.
	// A clip that completes into itself freezes on its last frame.
	OnComplete StateID
}

// Duration is the total playback time of one loop of the clip.
func (c ClipDef) Duration() float64 {
	return float64(c.FrameCount) * c.Speed
}

// Terminal reports whether the clip freezes forever once it completes.
func (c ClipDef) Terminal(self StateID) bool {
	return c.Locked && c.OnComplete == self
}

// ClipTable is indexed by StateID. Zero-valued entries are states the species
// has no art for; they are never entered.
type ClipTable [StateCount]ClipDef

// Has reports whether the species can play the state.
func (t *ClipTable) Has(s StateID) bool {
	return s >= 0 && s < StateCount && t[s].FrameCount > 0
}

func kingClips() ClipTable {
	return ClipTable{
		Idle:    {FrameCount: 11, Speed: 0.1},
		Run:     {FrameCount: 8, Speed: 0.1},
		Jump:    {FrameCount: 1, Speed: 0.1},
		Fall:    {FrameCount: 1, Speed: 0.1},
		Attack:  {FrameCount: 3, Speed: 0.1, Locked: true, OnComplete: Idle},
		Hit:     {FrameCount: 2, Speed: 0.1, Locked: true, OnComplete: Idle},
		Dead:    {FrameCount: 4, Speed: 0.1, Locked: true, OnComplete: Dead},
		DoorIn:  {FrameCount: 8, Speed: 0.1, Locked: true, OnComplete: Idle},
		DoorOut: {FrameCount: 8, Speed: 0.1, Locked: true, OnComplete: Idle},
	}
}

func kingPigClips() ClipTable {
	return ClipTable{
		Idle:   {FrameCount: 12, Speed: 0.15},
		Run:    {FrameCount: 6, Speed: 0.12},
		Jump:   {FrameCount: 1, Speed: 0.1},
		Fall:   {FrameCount: 1, Speed: 0.1},
		Attack: {FrameCount: 5, Speed: 0.08, Locked: true, OnComplete: Idle},
		Hit:    {FrameCount: 2, Speed: 0.08, Locked: true, OnComplete: Idle},
		Dead:   {FrameCount: 4, Speed: 0.2, Locked: true, OnComplete: Dead},
	}
}
