package game

type ParticleKind uint8

const (
	ParticleSpark ParticleKind = iota
	ParticleGlow
	ParticleDeath // player disintegration; exempt from life decay
)

type Particle struct {
	X, Y   float64
	VX, VY float64

	Size    float64
	Life    float64 // counts up toward MaxLife
	MaxLife float64

	Col  RGB
	Kind ParticleKind

	// FormingID claims this particle for an in-progress aggregation. While
	// non-zero the particle ignores normal physics and life decay.
	FormingID int
}

type ParticleSystem struct {
	Max    int
	P      []Particle
	seed   uint64
	ovrIdx int // circular overwrite index when full
}

func NewParticleSystem(maxParticles int, seed uint64) *ParticleSystem {
	if maxParticles <= 0 {
		maxParticles = MaxParticles
	}
	if seed == 0 {
		seed = 1
	}
	return &ParticleSystem{
		Max:  maxParticles,
		P:    make([]Particle, 0, maxParticles),
		seed: seed,
	}
}

func (ps *ParticleSystem) Clear() {
	ps.P = ps.P[:0]
	ps.ovrIdx = 0
}

func (ps *ParticleSystem) Add(p Particle) {
	if len(ps.P) < ps.Max {
		ps.P = append(ps.P, p)
		return
	}
	// Circular overwrite, but never evict a death or claimed particle: both
	// are owned by another subsystem until released.
	for tries := 0; tries < ps.Max; tries++ {
		if ps.ovrIdx >= ps.Max {
			ps.ovrIdx = 0
		}
		victim := &ps.P[ps.ovrIdx]
		ps.ovrIdx++
		if victim.Kind != ParticleDeath && victim.FormingID == 0 {
			*victim = p
			return
		}
	}
}

// remove swap-removes index i.
func (ps *ParticleSystem) remove(i int) {
	ps.P[i] = ps.P[len(ps.P)-1]
	ps.P = ps.P[:len(ps.P)-1]
}

// DeathCount returns how many death particles are still in the pool.
func (ps *ParticleSystem) DeathCount() int {
	n := 0
	for i := range ps.P {
		if ps.P[i].Kind == ParticleDeath {
			n++
		}
	}
	return n
}

// PurgeDeath drops every death particle; used when a respawn completes.
func (ps *ParticleSystem) PurgeDeath() {
	for i := 0; i < len(ps.P); {
		if ps.P[i].Kind == ParticleDeath {
			ps.remove(i)
			continue
		}
		i++
	}
}

// Unclaim releases particles whose forming record no longer exists.
func (ps *ParticleSystem) Unclaim(formingID int) {
	for i := range ps.P {
		if ps.P[i].FormingID == formingID {
			ps.P[i].FormingID = 0
		}
	}
}
