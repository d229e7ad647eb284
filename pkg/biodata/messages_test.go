package biodata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/biodata/pkg/biodata"
)

func TestDefaultMessages(t *testing.T) {
	t.Parallel()

	m := biodata.DefaultMessages()

	for _, f := range biodata.Fields {
		assert.NotEmpty(t, m.Label(f), f)
		assert.NotEmpty(t, m.RequiredMessage(f), f)
		assert.NotEmpty(t, m.InvalidMessage(f), f)
		assert.True(t, biodata.HasRule(f), f)
	}

	assert.Equal(t, "This field is required.", m.FallbackRequired)
	assert.Equal(t, "Biodata submitted successfully.", m.Submitted)
	assert.Equal(t, "Please upload a valid image file.", m.InvalidImage)
	assert.Equal(t, "Please enter your father occupation.", m.RequiredMessage(biodata.FatherOccupation))
	assert.Equal(t, "Please select a blood group.", m.InvalidMessage(biodata.BloodGroup))
	assert.Equal(t, "This field is required.", m.RequiredMessage("unknown"))
	assert.Equal(t, "unknown", m.Label("unknown"))
}

func TestDefaultMessages_IsCopy(t *testing.T) {
	t.Parallel()

	m := biodata.DefaultMessages()
	m.Fields[biodata.FullName] = biodata.FieldText{Invalid: "changed"}

	assert.Equal(t, "Name must be 3 to 50 letters and spaces only.", biodata.DefaultMessages().InvalidMessage(biodata.FullName))
}

func TestParseMessages(t *testing.T) {
	t.Parallel()

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		_, err := biodata.ParseMessages([]byte("fields: ["))
		assert.ErrorIs(t, err, biodata.ErrInvalidMessages)
	})

	t.Run("incomplete catalog", func(t *testing.T) {
		t.Parallel()
		_, err := biodata.ParseMessages([]byte("fallback_required: x\nsubmitted: y\ninvalid_image: z\n"))
		assert.ErrorIs(t, err, biodata.ErrInvalidMessages)
	})

	t.Run("custom messages are used", func(t *testing.T) {
		t.Parallel()
		m := biodata.DefaultMessages()
		text := m.Fields[biodata.Contact]
		text.Invalid = "Bad number."
		m.Fields[biodata.Contact] = text

		v := biodata.New(biodata.WithMessages(m))
		r := v.ValidateField(biodata.Contact, "1", true)
		require.False(t, r.Valid)
		assert.Equal(t, "Bad number.", r.Message)
	})
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := biodata.ParseField("birthDate")
	require.NoError(t, err)
	assert.Equal(t, biodata.BirthDate, f)

	f, err = biodata.ParseField("photoUpload")
	require.NoError(t, err)
	assert.True(t, f.IsFile())

	_, err = biodata.ParseField("password")
	assert.ErrorIs(t, err, biodata.ErrUnknownField)

	assert.Equal(t, 0, biodata.FullName.Position())
	assert.Equal(t, len(biodata.Fields), biodata.PhotoUpload.Position())
	assert.Equal(t, -1, biodata.Field("x").Position())
	assert.True(t, biodata.BloodGroup.IsSelect())
	assert.True(t, biodata.Address.IsMultiline())
}
