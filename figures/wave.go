package figures

import (
	"github.com/speezepearson/contravis/lattice"
)

// FormWave steps from a line of four facing across into a wave along the set,
// everybody facing the way they progress.
type FormWave struct {
	Beats float64 `yaml:"beats,omitempty"`
}

func (FormWave) Name() string { return "form-wave" }

func (f FormWave) Duration() float64 { return beatsOr(f.Beats, 4) }

func (f FormWave) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	beats := f.Duration()
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		sg := float64(d.Progression.Sign())
		p := d.Pos.Add(lattice.V(-sg/2, sg*3/4))
		return lattice.Timeline{kf(beats, face(goTo(d, p), lattice.Align(d.Progression.Heading(), d.Facing)))}, nil
	})
}

// WaveBalance balances in a wave, right then left, and belly-slides one place
// to the right, spinning clockwise; then it does the same back to the left.
type WaveBalance struct {
	Beats float64 `yaml:"beats,omitempty"`
}

func (WaveBalance) Name() string { return "wave-balance" }

func (f WaveBalance) Duration() float64 { return beatsOr(f.Beats, 8) }

func (f WaveBalance) Keyframes(s lattice.Snapshot) (lattice.Timelines, error) {
	b := f.Duration() / 16
	return eachDancer(s, func(id lattice.DancerID, d lattice.DancerState) (lattice.Timeline, error) {
		slid := turn(step(d, right(1)), -1)
		return lattice.Timeline{
			kf(b, step(d, right(0.2))),
			kf(b, step(d, right(0.2))),
			kf(b, step(d, left(0.2))),
			kf(b, step(d, left(0.2))),
			kf(4*b, slid),
			kf(b, step(slid, left(0.2))),
			kf(b, step(slid, left(0.2))),
			kf(b, step(slid, right(0.2))),
			kf(b, step(slid, right(0.2))),
			kf(4*b, turn(step(slid, left(1)), 1)),
		}, nil
	})
}
