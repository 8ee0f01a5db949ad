package chamber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tobacco_drying/internal/models"
)

func TestRegistry_Defaults(t *testing.T) {
	reg := NewRegistry(nil)

	list := reg.List()
	require.Len(t, list, 3)
	for i, c := range list {
		id := string(rune('1' + i))
		assert.Equal(t, id, c.ID())
		assert.Equal(t, "Chamber "+id, c.Name())
		assert.Equal(t, models.DeviceState{}, c.Devices())
		assert.Equal(t, DefaultSettings(), c.Settings())
		assert.Equal(t, models.SessionIdle, c.Session().Status)
		assert.Len(t, c.Sensors(), 2)
	}

	s := list[0].Sensors()
	assert.Equal(t, 25.5, s[0].TemperatureC)
	assert.Equal(t, 65.0, s[0].HumidityPct)
	assert.Equal(t, LevelNormal, s[0].TemperatureLevel)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	reg := NewRegistry(nil)

	_, err := reg.Lookup("99")
	var nf *ChamberNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "99", nf.ID)

	_, err = reg.Lookup("")
	assert.Equal(t, KindChamberNotFound, KindOf(err))
}

func TestRegistry_ChambersAreIndependent(t *testing.T) {
	reg := NewRegistry(nil)
	one, _ := reg.Lookup("1")
	two, _ := reg.Lookup("2")

	_, _ = one.ToggleDevice(models.Heater2)
	_, _ = one.StartDrying()

	assert.False(t, two.Devices().Heater2)
	assert.Equal(t, models.SessionIdle, two.Session().Status)
}

func TestRegistry_Neighbors(t *testing.T) {
	reg := NewRegistry(nil)

	cases := []struct{ id, prev, next string }{
		{"1", "", "2"},
		{"2", "1", "3"},
		{"3", "2", ""},
	}
	for _, tc := range cases {
		prev, next, err := reg.Neighbors(tc.id)
		require.NoError(t, err)
		assert.Equal(t, tc.prev, prev, tc.id)
		assert.Equal(t, tc.next, next, tc.id)
	}

	_, _, err := reg.Neighbors("4")
	assert.Equal(t, KindChamberNotFound, KindOf(err))
}

func TestRegistry_Snapshot(t *testing.T) {
	reg := NewRegistry(nil)

	snap, err := reg.Snapshot("2")
	require.NoError(t, err)
	assert.Equal(t, "Chamber 2", snap.Name)
	assert.Equal(t, "1", snap.PrevID)
	assert.Equal(t, "3", snap.NextID)
	assert.Equal(t, "02:00:00", snap.Session.TimeDisplay)
	assert.Equal(t, 0, snap.Session.ProgressPercent)
}

func TestLevels(t *testing.T) {
	assert.Equal(t, LevelCold, TemperatureLevel(19.9))
	assert.Equal(t, LevelNormal, TemperatureLevel(20))
	assert.Equal(t, LevelNormal, TemperatureLevel(30))
	assert.Equal(t, LevelHot, TemperatureLevel(30.1))
	assert.Equal(t, LevelDry, HumidityLevel(39))
	assert.Equal(t, LevelNormal, HumidityLevel(70))
	assert.Equal(t, LevelHumid, HumidityLevel(71))
}
