package syntax

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestHidingZeroValue(t *testing.T) {
	var h Hiding
	assert.Equal(t, NotHidden, h, "zero Hiding should be visible")
}

func TestHidingString(t *testing.T) {
	assert.Equal(t, "visible", NotHidden.String())
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "instance", Instance.String())
}

func TestCombineHiding(t *testing.T) {
	tests := []struct {
		name   string
		h1, h2 Hiding
		want   Hiding
	}{
		{"identity left", NotHidden, Instance, Instance},
		{"identity right", Hidden, NotHidden, Hidden},
		{"visible pair", NotHidden, NotHidden, NotHidden},
		{"hidden pair", Hidden, Hidden, Hidden},
		{"instance pair", Instance, Instance, Instance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CombineHiding(tt.h1, tt.h2))
			assert.Equal(t, tt.want, CombineHiding(tt.h2, tt.h1), "combination should not depend on order")
		})
	}
}

func TestCombineHidingForbidden(t *testing.T) {
	assert.Panics(t, func() { CombineHiding(Hidden, Instance) })
	assert.Panics(t, func() { CombineHiding(Instance, Hidden) })
}

func TestHidingPredicates(t *testing.T) {
	tests := []struct {
		h                             Hiding
		isHidden, visible, notVisible bool
	}{
		{NotHidden, false, true, false},
		{Hidden, true, false, true},
		{Instance, false, false, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.isHidden, tt.h.IsHidden(), "IsHidden(%v)", tt.h)
		assert.Equal(t, tt.visible, tt.h.Visible(), "Visible(%v)", tt.h)
		assert.Equal(t, tt.notVisible, tt.h.NotVisible(), "NotVisible(%v)", tt.h)
	}
}

func TestHidingIdentityLens(t *testing.T) {
	assert.Equal(t, Hidden, Hidden.GetHiding())
	assert.Equal(t, Instance, Hidden.SetHiding(Instance))
	assert.Equal(t, Hidden, Hide(NotHidden))
	assert.Equal(t, Instance, MakeInstance(Hidden))
}
