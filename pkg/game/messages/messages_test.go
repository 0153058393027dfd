package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet_TranslatesKnownKeys(t *testing.T) {
	assert.Equal(t, "Need a key or lockpick kit", Get(NeedKeyOrLockpick))
	assert.Equal(t, "Need a key (double-locked door)", Get(NeedKeyDoubleLocked))
}

func TestGet_FormatsVars(t *testing.T) {
	assert.Equal(t, "There is no door to the north.", Get(NoDoor, "north"))
	assert.Equal(t, "Not enough gems for Vault (cost 2).", Get(NotEnoughGems, "Vault", 2))
}

func TestGet_UnknownKeyPassesThrough(t *testing.T) {
	assert.Equal(t, "NOT_A_KEY", Get("NOT_A_KEY"))
}
