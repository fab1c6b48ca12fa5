// Package camera implements a free-fly camera as an explicit value: input
// handlers take a State and return the updated one.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	maxPitch = 89.0
	minPitch = -89.0
)

// State is the camera position and orientation. Yaw and Pitch are in degrees.
type State struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Yaw      float32
	Pitch    float32
}

// Default returns the starting camera: at the origin, looking down -Z and
// slightly toward the ground.
func Default() State {
	return State{
		Position: mgl32.Vec3{0, 0, 0},
		Front:    mgl32.Vec3{0, -0.3, -1},
		Up:       mgl32.Vec3{0, 1, 0},
		Yaw:      -90,
		Pitch:    0,
	}
}

// Movement is the set of directions held during a frame.
type Movement struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Move translates the camera by speed*dt along the held directions.
func (s State) Move(m Movement, dt, speed float32) State {
	step := speed * dt
	if m.Forward {
		s.Position = s.Position.Add(s.Front.Mul(step))
	}
	if m.Backward {
		s.Position = s.Position.Sub(s.Front.Mul(step))
	}
	if m.Left || m.Right {
		right := s.Front.Cross(s.Up).Normalize().Mul(step)
		if m.Left {
			s.Position = s.Position.Sub(right)
		}
		if m.Right {
			s.Position = s.Position.Add(right)
		}
	}
	return s
}

// Look applies a mouse offset to yaw and pitch and recomputes Front.
func (s State) Look(dx, dy, sensitivity float32) State {
	s.Yaw += dx * sensitivity
	s.Pitch += dy * sensitivity

	if s.Pitch > maxPitch {
		s.Pitch = maxPitch
	}
	if s.Pitch < minPitch {
		s.Pitch = minPitch
	}

	s.Front = Direction(s.Yaw, s.Pitch)
	return s
}

// Direction converts yaw and pitch in degrees to a unit front vector.
func Direction(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	return mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}.Normalize()
}

// View returns the world-to-camera matrix.
func (s State) View() mgl32.Mat4 {
	return mgl32.LookAtV(s.Position, s.Position.Add(s.Front), s.Up)
}
