package pointset

import (
	"math"

	"github.com/katalvlaran/hyperdisc/cplx"
)

const (
	// DefaultSectors is the number of angular sectors used by New(0).
	DefaultSectors = 10

	// radiusResolution is the number of bands per unit of squared modulus.
	radiusResolution = 10000

	// originRadiusSquared is the squared radius below which every point is
	// filed under sector 0.
	originRadiusSquared = 1e-12

	// bucketCapacity is the initial capacity of a new bucket.
	bucketCapacity = 8
)

type key struct {
	sector, band int
}

// Set is a bucketed set of complex points.
type Set struct {
	sectors int
	buckets map[key][]complex128
	n       int
}

// New returns an empty set with the given number of sectors.
// A non-positive count selects DefaultSectors.
func New(sectors int) *Set {
	if sectors <= 0 {
		sectors = DefaultSectors
	}
	return &Set{sectors: sectors, buckets: make(map[key][]complex128)}
}

// Sector returns the angular sector of z in [0, sectors).
func (s *Set) Sector(z complex128) int {
	if cplx.ModulusSquared(z) < originRadiusSquared {
		return 0
	}
	sec := int((cplx.Arg(z)+math.Pi)/(2*math.Pi/float64(s.sectors))) % s.sectors
	if sec < 0 {
		sec += s.sectors
	}
	return sec
}

// Sectors returns the configured sector count.
func (s *Set) Sectors() int { return s.sectors }

func (s *Set) keyOf(z complex128) key {
	return key{sector: s.Sector(z), band: int(math.Floor(cplx.ModulusSquared(z) * radiusResolution))}
}

// Add stores z without checking for an existing neighbor.
func (s *Set) Add(z complex128) {
	k := s.keyOf(z)
	b, ok := s.buckets[k]
	if !ok {
		b = make([]complex128, 0, bucketCapacity)
	}
	s.buckets[k] = append(b, z)
	s.n++
}

// Insert stores z unless the set already contains it and reports whether z
// was added.
func (s *Set) Insert(z complex128) bool {
	if s.Contains(z) {
		return false
	}
	s.Add(z)
	return true
}

// Contains reports whether a stored point lies within LinearTolerance of z.
func (s *Set) Contains(z complex128) bool {
	const t = cplx.LinearTolerance
	nearby := [5]complex128{z, z + complex(t, t), z + complex(t, -t), z - complex(t, t), z - complex(t, -t)}

	var seen [5]key
	n := 0
next:
	for _, p := range nearby {
		k := s.keyOf(p)
		for _, prev := range seen[:n] {
			if prev == k {
				continue next
			}
		}
		seen[n] = k
		n++
		for _, q := range s.buckets[k] {
			if cplx.ModulusSquared(q-z) < cplx.LinearToleranceSquared {
				return true
			}
		}
	}
	return false
}

// Len returns the number of stored points.
func (s *Set) Len() int { return s.n }

// Reset removes every point while keeping bucket storage.
func (s *Set) Reset() {
	for k, b := range s.buckets {
		s.buckets[k] = b[:0]
	}
	s.n = 0
}
