package camera_test

import (
	"testing"

	"gltut/internal/camera"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], eps, "component %d of %v", i, got)
	}
}

func TestMoveForwardAndBack(t *testing.T) {
	s := camera.Default()
	s.Front = mgl32.Vec3{0, 0, -1}

	fwd := s.Move(camera.Movement{Forward: true}, 0.5, 4)
	assertVec(t, mgl32.Vec3{0, 0, -2}, fwd.Position)

	back := fwd.Move(camera.Movement{Backward: true}, 0.5, 4)
	assertVec(t, mgl32.Vec3{0, 0, 0}, back.Position)

	// the receiver is a value and must not change
	assertVec(t, mgl32.Vec3{0, 0, 0}, s.Position)
}

func TestMoveStrafesPerpendicular(t *testing.T) {
	s := camera.Default()
	s.Front = mgl32.Vec3{0, 0, -2}

	right := s.Move(camera.Movement{Right: true}, 1, 3)
	assertVec(t, mgl32.Vec3{3, 0, 0}, right.Position)

	left := s.Move(camera.Movement{Left: true}, 1, 3)
	assertVec(t, mgl32.Vec3{-3, 0, 0}, left.Position)

	both := s.Move(camera.Movement{Left: true, Right: true}, 1, 3)
	assertVec(t, mgl32.Vec3{0, 0, 0}, both.Position)
}

func TestMoveZeroDelta(t *testing.T) {
	s := camera.Default()
	moved := s.Move(camera.Movement{Forward: true, Right: true}, 0, 5)
	assert.Equal(t, s, moved)
}

func TestLookClampsPitch(t *testing.T) {
	s := camera.Default()

	up := s.Look(0, 10000, 0.1)
	assert.Equal(t, float32(89), up.Pitch)

	down := s.Look(0, -10000, 0.1)
	assert.Equal(t, float32(-89), down.Pitch)
	assert.Less(t, down.Front.Y(), float32(0))
}

func TestLookRecomputesUnitFront(t *testing.T) {
	s := camera.Default()

	// zero offset at yaw -90, pitch 0 looks straight down -Z
	still := s.Look(0, 0, 0.1)
	assertVec(t, mgl32.Vec3{0, 0, -1}, still.Front)

	turned := s.Look(900, 0, 0.1)
	assert.InDelta(t, 0, turned.Yaw, eps)
	assertVec(t, mgl32.Vec3{1, 0, 0}, turned.Front)
	assert.InDelta(t, 1, turned.Front.Len(), eps)

	tilted := s.Look(123, -77, 0.1)
	assert.InDelta(t, 1, tilted.Front.Len(), eps)
}

func TestViewLooksAlongFront(t *testing.T) {
	s := camera.Default()
	s.Position = mgl32.Vec3{1, 2, 3}
	s.Front = mgl32.Vec3{0, 0, -1}

	v := s.View()
	eye := v.Mul4x1(s.Position.Vec4(1)).Vec3()
	assertVec(t, mgl32.Vec3{0, 0, 0}, eye)

	ahead := v.Mul4x1(s.Position.Add(s.Front).Vec4(1)).Vec3()
	assertVec(t, mgl32.Vec3{0, 0, -1}, ahead)
}

func TestMouseOffsets(t *testing.T) {
	m := camera.NewMouse(960, 540)

	m, dx, dy := m.Offset(100, 100)
	assert.Zero(t, dx, "first sample must not jump")
	assert.Zero(t, dy)

	m, dx, dy = m.Offset(110, 90)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(10), dy, "moving the cursor up looks up")

	m = m.Reset()
	_, dx, dy = m.Offset(500, 500)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestLensProjection(t *testing.T) {
	l := camera.NewLens(90, 1920, 1080, 0.1, 100)
	assert.InDelta(t, 1920.0/1080.0, l.Aspect, eps)

	l.SetViewport(800, 0)
	assert.InDelta(t, 1920.0/1080.0, l.Aspect, eps, "zero height keeps the ratio")

	l.SetViewport(800, 800)
	assert.InDelta(t, 1, l.Aspect, eps)

	want := mgl32.Perspective(mgl32.DegToRad(90), 1, 0.1, 100)
	assert.Equal(t, want, l.Projection())
}
