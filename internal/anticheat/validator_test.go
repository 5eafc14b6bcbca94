package anticheat

import (
	"testing"

	"github.com/lguibr/gameserver/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name      string
		old       model.Position
		new       model.Position
		velocity  model.Position
		deltaTime float32
		want      Result
	}{
		{
			name:      "valid small move",
			old:       model.Position{X: 0, Y: 0, Z: 0},
			new:       model.Position{X: 1, Y: 0, Z: 0},
			velocity:  model.Position{X: 10, Y: 0, Z: 0},
			deltaTime: 0.1,
			want:      Valid,
		},
		{
			name:      "speed hack",
			old:       model.Position{X: 0, Y: 0, Z: 0},
			new:       model.Position{X: 40, Y: 0, Z: 0},
			velocity:  model.Position{X: 10, Y: 0, Z: 0},
			deltaTime: 0.1,
			want:      SpeedHack,
		},
		{
			name:      "teleport",
			old:       model.Position{X: 0, Y: 0, Z: 0},
			new:       model.Position{X: 400, Y: 0, Z: 0},
			velocity:  model.Position{},
			deltaTime: 1,
			want:      Teleport,
		},
		{
			name:      "out of bounds wins over teleport",
			old:       model.Position{X: 0, Y: 0, Z: 0},
			new:       model.Position{X: 1001, Y: 0, Z: 0},
			velocity:  model.Position{},
			deltaTime: 1,
			want:      OutOfBounds,
		},
		{
			name:      "exactly at the speed limit is valid",
			old:       model.Position{X: 0, Y: 0, Z: 0},
			new:       model.Position{X: 30, Y: 0, Z: 0},
			velocity:  model.Position{},
			deltaTime: 0.1,
			want:      Valid, // 100 * 0.1 * 3.0 == 30, boundary is inclusive
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.old, tc.new, tc.velocity, tc.deltaTime, model.MaxSpeed)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidate_OutOfBoundsTakesPriorityOverEverything(t *testing.T) {
	// A move that is simultaneously out of bounds, a teleport and a speed
	// hack must classify as OutOfBounds: that check runs first.
	old := model.Position{X: 0, Y: 0, Z: 0}
	newPos := model.Position{X: 5000, Y: 0, Z: 0}
	got := Validate(old, newPos, model.Position{}, 0.001, model.MaxSpeed)
	assert.Equal(t, OutOfBounds, got)
}
