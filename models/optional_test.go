package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional(t *testing.T) {
	var o Optional[string]
	assert.False(t, o.IsSet())
	assert.Nil(t, o.Ptr())
	assert.Equal(t, "-", o.OrElse("-"))
	assert.Equal(t, o, Unset[string]())

	o = Some("")
	assert.True(t, o.IsSet())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, "", v)
	assert.Equal(t, "", o.OrElse("-"))

	p := o.Ptr()
	*p = "changed"
	assert.Equal(t, "", o.OrElse("-"))
}
