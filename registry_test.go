package fabrik

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type alpha struct{}
type beta struct{}
type gamma struct{}

// appendOp returns an operation that records its name on the conn (a string
// slice pointer, standing in for an opaque store handle).
func appendOp(name string) func(ctx context.Context, conn *[]string) (any, error) {
	return func(ctx context.Context, conn *[]string) (any, error) {
		*conn = append(*conn, name)
		return name, nil
	}
}

func TestRegistry_DrainRunsInRegistrationOrder(t *testing.T) {
	reg := NewRegistry[*[]string]()
	reg.add(reflect.TypeOf(alpha{}), appendOp("alpha"))
	reg.add(reflect.TypeOf(beta{}), appendOp("beta"))
	reg.add(reflect.TypeOf(gamma{}), appendOp("gamma"))

	var written []string
	err := reg.drain(context.Background(), &written)

	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, written)
}

func TestRegistry_DrainEmptyIsNoOp(t *testing.T) {
	reg := NewRegistry[*[]string]()

	var written []string
	err := reg.drain(context.Background(), &written)

	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestRegistry_DrainConsumesOperations(t *testing.T) {
	reg := NewRegistry[*[]string]()
	reg.add(reflect.TypeOf(alpha{}), appendOp("alpha"))

	var written []string
	require.NoError(t, reg.drain(context.Background(), &written))
	require.NoError(t, reg.drain(context.Background(), &written))

	assert.Equal(t, []string{"alpha"}, written, "operations must run at most once")
	assert.Zero(t, reg.Len())
}

func TestRegistry_DrainHaltsOnFirstError(t *testing.T) {
	boom := errors.New("unique constraint violated")

	reg := NewRegistry[*[]string]()
	reg.add(reflect.TypeOf(alpha{}), appendOp("alpha"))
	reg.add(reflect.TypeOf(beta{}), func(ctx context.Context, conn *[]string) (any, error) {
		return nil, boom
	})
	reg.add(reflect.TypeOf(gamma{}), appendOp("gamma"))

	var written []string
	err := reg.drain(context.Background(), &written)

	require.Error(t, err)
	assert.Equal(t, []string{"alpha"}, written, "operations after the failure must not run")

	var drainErr *DrainError
	require.ErrorAs(t, err, &drainErr)
	assert.Equal(t, reflect.TypeOf(beta{}), drainErr.EntityType)
	assert.Equal(t, 1, drainErr.Index)
	assert.ErrorIs(t, err, boom)
}

func TestRegistry_PendingExposesTypeTags(t *testing.T) {
	reg := NewRegistry[*[]string]()
	reg.add(reflect.TypeOf(beta{}), appendOp("beta"))
	reg.add(reflect.TypeOf(alpha{}), appendOp("alpha"))

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []reflect.Type{reflect.TypeOf(beta{}), reflect.TypeOf(alpha{})}, reg.Pending())

	// The returned slice is a copy.
	tags := reg.Pending()
	tags[0] = reflect.TypeOf(gamma{})
	assert.Equal(t, reflect.TypeOf(beta{}), reg.Pending()[0])
}

func TestDrainError_Message(t *testing.T) {
	err := &DrainError{
		EntityType: reflect.TypeOf(alpha{}),
		Index:      2,
		Err:        fmt.Errorf("no such table: alpha"),
	}

	assert.Contains(t, err.Error(), "fabrik.alpha")
	assert.Contains(t, err.Error(), "operation 2")
	assert.Contains(t, err.Error(), "no such table")
}
