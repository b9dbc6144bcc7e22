package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()

	parsed, err := parseID(oid.Hex())

	assert.NoError(t, err)
	assert.Equal(t, oid, parsed)
}

func TestParseIDMalformed(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{name: "empty", id: ""},
		{name: "not hex", id: "willBeStripped"},
		{name: "too short", id: "abc123"},
		{name: "too long", id: primitive.NewObjectID().Hex() + "ff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseID(tt.id)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid document id")
		})
	}
}
