package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaform/ariaform/pkg/locale"
)

func TestDateToISO(t *testing.T) {
	t.Parallel()

	t.Run("converts dmy dates", func(t *testing.T) {
		iso, ok := locale.DateToISO("24/12/2019", locale.DMY, "/")
		require.True(t, ok)
		assert.Equal(t, "2019-12-24", iso)
	})

	t.Run("converts mdy dates", func(t *testing.T) {
		iso, ok := locale.DateToISO("12-24-2019", locale.MDY, "-")
		require.True(t, ok)
		assert.Equal(t, "2019-12-24", iso)
	})

	t.Run("converts ymd dates", func(t *testing.T) {
		iso, ok := locale.DateToISO("2019.12.24", locale.YMD, ".")
		require.True(t, ok)
		assert.Equal(t, "2019-12-24", iso)
	})

	t.Run("passes through ISO input unchanged", func(t *testing.T) {
		iso, ok := locale.DateToISO("2019-12-24", locale.DMY, "/")
		require.True(t, ok)
		assert.Equal(t, "2019-12-24", iso)
	})

	t.Run("passes through empty input", func(t *testing.T) {
		iso, ok := locale.DateToISO("", locale.DMY, "/")
		require.True(t, ok)
		assert.Empty(t, iso)
	})

	t.Run("rejects single digit day", func(t *testing.T) {
		_, ok := locale.DateToISO("4/12/2019", locale.DMY, "/")
		assert.False(t, ok)
	})

	t.Run("rejects two digit year", func(t *testing.T) {
		_, ok := locale.DateToISO("24/12/19", locale.DMY, "/")
		assert.False(t, ok)
	})

	t.Run("rejects wrong component count", func(t *testing.T) {
		_, ok := locale.DateToISO("24/12", locale.DMY, "/")
		assert.False(t, ok)
	})

	t.Run("rejects year-first shape for dmy", func(t *testing.T) {
		_, ok := locale.DateToISO("2019/12/24", locale.DMY, "/")
		assert.False(t, ok)
	})
}

func TestDateRoundTrip(t *testing.T) {
	t.Parallel()

	dates := []string{"2019-12-24", "2000-01-01", "1987-06-05", "2024-02-29"}
	formats := []locale.DateFormat{locale.DMY, locale.MDY, locale.YMD}
	separators := []string{"/", "-", "."}

	for _, d := range dates {
		for _, format := range formats {
			for _, sep := range separators {
				local, ok := locale.ISODateToLocale(d, format, sep)
				require.True(t, ok, "to locale %s %s %s", d, format, sep)
				iso, ok := locale.DateToISO(local, format, sep)
				require.True(t, ok, "to iso %s %s %s", local, format, sep)
				assert.Equal(t, d, iso)
			}
		}
	}
}

func TestTimeToISO(t *testing.T) {
	t.Parallel()

	t.Run("24 hour format passes well formed times", func(t *testing.T) {
		iso, ok := locale.TimeToISO("18:45", locale.Time24, ":", "")
		require.True(t, ok)
		assert.Equal(t, "18:45", iso)
	})

	t.Run("12 hour pm adds twelve", func(t *testing.T) {
		iso, ok := locale.TimeToISO("06:30", locale.Time12, ":", "pm")
		require.True(t, ok)
		assert.Equal(t, "18:30", iso)
	})

	t.Run("12 hour am keeps morning hours", func(t *testing.T) {
		iso, ok := locale.TimeToISO("06:30", locale.Time12, ":", "am")
		require.True(t, ok)
		assert.Equal(t, "06:30", iso)
	})

	t.Run("midnight is hour zero", func(t *testing.T) {
		iso, ok := locale.TimeToISO("12:00", locale.Time12, ":", "am")
		require.True(t, ok)
		assert.Equal(t, "00:00", iso)
	})

	t.Run("noon stays twelve", func(t *testing.T) {
		iso, ok := locale.TimeToISO("12:00", locale.Time12, ":", "pm")
		require.True(t, ok)
		assert.Equal(t, "12:00", iso)
	})

	t.Run("meridiem parsed from minutes suffix", func(t *testing.T) {
		iso, ok := locale.TimeToISO("09.30pm", locale.Time12, ".", "")
		require.True(t, ok)
		assert.Equal(t, "21:30", iso)
	})

	t.Run("missing meridiem fails in 12 hour mode", func(t *testing.T) {
		_, ok := locale.TimeToISO("09:30", locale.Time12, ":", "")
		assert.False(t, ok)
	})

	t.Run("hour above twelve fails in 12 hour mode", func(t *testing.T) {
		_, ok := locale.TimeToISO("13:30", locale.Time12, ":", "pm")
		assert.False(t, ok)
	})

	t.Run("unknown meridiem fails", func(t *testing.T) {
		_, ok := locale.TimeToISO("09:30", locale.Time12, ":", "xx")
		assert.False(t, ok)
	})

	t.Run("rejects malformed splits", func(t *testing.T) {
		for _, value := range []string{"9:30", "09:30:15", "0930", "09:3"} {
			_, ok := locale.TimeToISO(value, locale.Time24, ":", "")
			assert.False(t, ok, value)
		}
	})

	t.Run("empty value passes through", func(t *testing.T) {
		iso, ok := locale.TimeToISO("", locale.Time12, ":", "")
		require.True(t, ok)
		assert.Empty(t, iso)
	})
}

func TestValidISODate(t *testing.T) {
	t.Parallel()

	assert.True(t, locale.ValidISODate("2019-12-24"))
	assert.True(t, locale.ValidISODate("2024-02-29"))
	assert.False(t, locale.ValidISODate("2019-02-31"))
	assert.False(t, locale.ValidISODate("2023-02-29"))
	assert.False(t, locale.ValidISODate("24/12/2019"))
	assert.False(t, locale.ValidISODate(""))
}

func TestShiftISODate(t *testing.T) {
	t.Parallel()

	shifted, ok := locale.ShiftISODate("2019-12-24", 8)
	require.True(t, ok)
	assert.Equal(t, "2020-01-01", shifted)

	shifted, ok = locale.ShiftISODate("2020-01-01", -1)
	require.True(t, ok)
	assert.Equal(t, "2019-12-31", shifted)

	_, ok = locale.ShiftISODate("not a date", 1)
	assert.False(t, ok)
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults match DefaultRegion", func(t *testing.T) {
		region, err := locale.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, locale.DefaultRegion(), region)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("ARIAFORM_DATE_FORMAT", "ymd")
		t.Setenv("ARIAFORM_DECIMAL_SEPARATOR", ".")
		region, err := locale.FromEnv()
		require.NoError(t, err)
		assert.Equal(t, locale.YMD, region.DateFormat)
		assert.Equal(t, ".", region.DecimalSeparator)
	})

	t.Run("rejects unknown date format", func(t *testing.T) {
		t.Setenv("ARIAFORM_DATE_FORMAT", "ydm")
		_, err := locale.FromEnv()
		assert.ErrorIs(t, err, locale.ErrInvalidRegion)
	})
}
