package service

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidLengthRange = errors.New("invalid match length range")

// LengthSampler yields the number of rounds for the next match.
type LengthSampler interface {
	Next() int
}

type float64Source interface {
	Float64() float64
}

// UniformLength draws min + RoundToEven(u * (max-min)) with u uniform on [0,1),
// so both endpoints carry half the weight of the interior values.
type UniformLength struct {
	min, max int
	src      float64Source
}

func NewUniformLength(min, max int, src float64Source) (*UniformLength, error) {
	if min <= 0 || max < min {
		return nil, fmt.Errorf("rounds %d..%d: %w", min, max, ErrInvalidLengthRange)
	}
	return &UniformLength{min: min, max: max, src: src}, nil
}

func (u *UniformLength) Next() int {
	return u.min + int(math.RoundToEven(u.src.Float64()*float64(u.max-u.min)))
}

type FixedLength int

func (f FixedLength) Next() int {
	return int(f)
}

// SequenceLength replays a recorded list of lengths, cycling when exhausted.
type SequenceLength struct {
	lengths []int
	next    int
}

func NewSequenceLength(lengths ...int) *SequenceLength {
	return &SequenceLength{lengths: lengths}
}

func (s *SequenceLength) Next() int {
	if len(s.lengths) == 0 {
		return 0
	}
	n := s.lengths[s.next%len(s.lengths)]
	s.next++
	return n
}
