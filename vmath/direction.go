package vmath

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidDirection is returned by FromNum for indices outside 0..3
var ErrInvalidDirection = errors.New("invalid direction index")

// Direction is a 4-way compass heading
// Values are declared in ring order: Next/Prev step through this order, which is not a 90° rotation
type Direction uint8

const (
	Left Direction = iota
	Down
	Right
	Up
)

// Directions lists every heading in ring order
var Directions = [4]Direction{Left, Down, Right, Up}

var directionVectors = [4]Point{
	Left:  {-1, 0},
	Down:  {0, 1},
	Right: {1, 0},
	Up:    {0, -1},
}

var directionRadians = [4]float64{
	Left:  0,
	Down:  3 * HalfPi,
	Right: math.Pi,
	Up:    HalfPi,
}

var directionNames = [4]string{
	Left:  "Left",
	Down:  "Down",
	Right: "Right",
	Up:    "Up",
}

// FromNum maps 0=Left, 1=Down, 2=Right, 3=Up
func FromNum(i int) (Direction, error) {
	if i < 0 || i > 3 {
		return Left, fmt.Errorf("%w: %d", ErrInvalidDirection, i)
	}
	return Direction(i), nil
}

// RandomDirection picks a heading uniformly
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

func (d Direction) Next() Direction { return (d + 1) % 4 }
func (d Direction) Prev() Direction { return (d + 3) % 4 }

// Opposite is two ring steps away, which is also the geometric reverse
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Vector returns the unit displacement in screen space (y grows downward)
func (d Direction) Vector() Point {
	return directionVectors[d%4]
}

// Radians matches Point.Angle of the direction vector
func (d Direction) Radians() float64 {
	return directionRadians[d%4]
}

func (d Direction) Degrees() int {
	return int(math.Round(Degrees(d.Radians())))
}

func (d Direction) String() string {
	if d > Up {
		return "Unknown"
	}
	return directionNames[d]
}
