package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampWidth(t *testing.T) {
	inputs := []int{-100, 0, 50, 300, 500, 9999}
	want := []int{50, 50, 50, 300, 500, 500}

	for i, in := range inputs {
		s := NewGutterState(DefaultGutterWidth)
		assert.Equal(t, want[i], s.SetWidth(in), "input %d", in)
		assert.Equal(t, want[i], s.Width)
	}
}

func TestGutterState_InitiallyHidden(t *testing.T) {
	s := NewGutterState(9999)
	assert.Equal(t, Hidden, s.Visibility)
	assert.Equal(t, MaxGutterWidth, s.Width)
}

func TestGutterState_Toggle(t *testing.T) {
	s := NewGutterState(DefaultGutterWidth)

	assert.Equal(t, Visible, s.Toggle(false))
	assert.True(t, s.Visible())
	assert.Equal(t, Hidden, s.Toggle(false))
	assert.False(t, s.Visible())
}

func TestGutterState_ModifiedForcesHidden(t *testing.T) {
	s := NewGutterState(DefaultGutterWidth)
	assert.Equal(t, Hidden, s.Toggle(true))

	s.SetVisible(true, false)
	assert.Equal(t, Hidden, s.SetVisible(true, true))
}

func TestGutterState_Resize(t *testing.T) {
	s := NewGutterState(200)

	_, ok := s.MoveResize(10)
	assert.False(t, ok, "no drag active")

	s.BeginResize(100)
	w, ok := s.MoveResize(150)
	assert.True(t, ok)
	assert.Equal(t, 250, w)

	w, _ = s.MoveResize(-1000)
	assert.Equal(t, MinGutterWidth, w)

	w, _ = s.MoveResize(1000)
	assert.Equal(t, MaxGutterWidth, w)

	assert.True(t, s.EndResize())
	assert.False(t, s.EndResize())
	assert.Equal(t, MaxGutterWidth, s.Width)
}

func TestGutterState_HideCancelsDrag(t *testing.T) {
	s := NewGutterState(200)
	s.SetVisible(true, false)
	s.BeginResize(0)
	s.SetVisible(false, false)
	assert.False(t, s.Drag.Active)
}

func TestVisibility_String(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "visible", Visible.String())
	assert.Equal(t, "unknown", Visibility(9).String())
}
