//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactFormValidationAndSend(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	backend := NewFakeBackend(t)
	tf.UseBackend(backend.URL)
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready())

	// Leave the movie input and open the form
	tf.Esc()
	tf.SendKeys(KeyContact)
	require.True(t, tf.SeePlain("Get in touch"), "Contact form should show")

	// Submitting an empty form raises the alert
	tf.SendKeys(KeyCtrlS)
	require.True(t, tf.SeePlain("press any key"), "Alert should show")
	tf.SendKeys(" ")

	require.NoError(t, tf.Type("Ann"))
	tf.Enter()
	require.NoError(t, tf.Type("ann@example.com"))
	tf.Enter()
	require.NoError(t, tf.Type("Loved it"))
	tf.Enter()

	require.True(t, tf.OutputContainsPlain("Message Sent!", 3*time.Second), "Button should report success")
	require.Eventually(t, func() bool { return len(backend.Contacts()) == 1 }, 2*time.Second, 25*time.Millisecond)

	msg := backend.Contacts()[0]
	assert.Equal(t, "Ann", msg["name"])
	assert.Equal(t, "ann@example.com", msg["email"])
	assert.Equal(t, "Loved it", msg["message"])
}
