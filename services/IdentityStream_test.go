package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkwell/models"
)

func TestIdentityStream_InitialEmissionIsNil(t *testing.T) {
	stream := newIdentityStream()

	ch := stream.Subscribe()

	select {
	case user := <-ch:
		assert.Nil(t, user)
	default:
		t.Fatal("expected an immediate emission on subscribe")
	}
}

func TestIdentityStream_SubscriberSeesCurrentIdentity(t *testing.T) {
	stream := newIdentityStream()
	stream.Set(&models.User{ID: "u1", Name: "Ada"})

	ch := stream.Subscribe()

	user := <-ch
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestIdentityStream_EmitsEveryChange(t *testing.T) {
	stream := newIdentityStream()
	ch := stream.Subscribe()
	<-ch // initial nil

	stream.Set(&models.User{ID: "u1"})
	stream.Set(nil) // logout

	first := <-ch
	require.NotNil(t, first)
	assert.Equal(t, "u1", first.ID)

	second := <-ch
	assert.Nil(t, second)
}

func TestIdentityStream_UnsubscribeClosesChannel(t *testing.T) {
	stream := newIdentityStream()
	ch := stream.Subscribe()
	<-ch

	stream.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	// emitting after unsubscribe must not panic
	stream.Set(&models.User{ID: "u1"})
}

func TestIdentityStream_SlowSubscriberDoesNotBlockEmitter(t *testing.T) {
	stream := newIdentityStream()
	stream.Subscribe() // never drained

	for i := 0; i < 100; i++ {
		stream.Set(&models.User{ID: "u1"})
	}
}
