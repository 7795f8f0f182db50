package export_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/filecabinet/pkg/file"
	"github.com/dmitrymomot/filecabinet/pkg/logger"
	"github.com/dmitrymomot/filecabinet/svc/cabinet"
	"github.com/dmitrymomot/filecabinet/svc/export"
)

// MockStorage is a mock implementation of the file.Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Put(ctx context.Context, path string, body io.Reader, contentType string) (*file.Object, error) {
	data, _ := io.ReadAll(body)
	args := m.Called(ctx, path, string(data), contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*file.Object), args.Error(1)
}

func (m *MockStorage) Exists(ctx context.Context, path string) bool {
	return m.Called(ctx, path).Bool(0)
}

func (m *MockStorage) Location(path string) string {
	return m.Called(path).String(0)
}

const scenarioCSV = "1, Anna, Ray, 1990-May-01, M, 3, 1000.00\n"

const scenarioXML = `<?xml version="1.0" encoding="UTF-8"?>
<records>
  <record id="1">
    <firstName>Anna</firstName>
    <lastName>Ray</lastName>
    <dateOfBirth>1990-May-01</dateOfBirth>
    <gender>M</gender>
    <numberOfReviews>3</numberOfReviews>
    <salary>1000.00</salary>
  </record>
</records>
`

func scenarioStore(t *testing.T) *cabinet.Store {
	t.Helper()
	store := cabinet.NewStore(cabinet.DefaultRuleSet(), cabinet.WithLogger(logger.Discard()))
	_, err := store.Create(cabinet.Params{
		FirstName:       "Anna",
		LastName:        "Ray",
		DateOfBirth:     time.Date(1990, time.May, 1, 0, 0, 0, 0, time.UTC),
		Gender:          cabinet.GenderMan,
		NumberOfReviews: 3,
		Salary:          decimal.RequireFromString("1000.00"),
	})
	require.NoError(t, err)
	return store
}

func TestCSVWriter(t *testing.T) {
	t.Run("scenario record", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, export.NewSnapshot(scenarioStore(t).List()).SaveToCSV(&buf))
		assert.Equal(t, scenarioCSV, buf.String())
	})

	t.Run("no header for empty set", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, export.NewSnapshot(nil).SaveToCSV(&buf))
		assert.Empty(t, buf.String())
	})

	t.Run("embedded commas are not quoted", func(t *testing.T) {
		var buf bytes.Buffer
		rec := cabinet.Record{ID: 7, FirstName: "Ray, Jr", LastName: "Doe", Gender: cabinet.GenderMan}
		require.NoError(t, export.NewCSVWriter(&buf).Write(rec))
		assert.Equal(t, "7, Ray, Jr, Doe, 0001-Jan-01, M, 0, 0.00\n", buf.String())
	})
}

func TestXMLWriter(t *testing.T) {
	t.Run("scenario record", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, export.NewSnapshot(scenarioStore(t).List()).SaveToXML(&buf))
		assert.Equal(t, scenarioXML, buf.String())
	})

	t.Run("empty set", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, export.NewXMLWriter(&buf).Write(nil))
		assert.Equal(t, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<records></records>\n", buf.String())
	})

	t.Run("escapes markup", func(t *testing.T) {
		var buf bytes.Buffer
		rec := cabinet.Record{ID: 1, FirstName: "A<b>", LastName: "C&D"}
		require.NoError(t, export.NewXMLWriter(&buf).Write([]cabinet.Record{rec}))
		assert.Contains(t, buf.String(), "<firstName>A&lt;b&gt;</firstName>")
		assert.Contains(t, buf.String(), "<lastName>C&amp;D</lastName>")
	})
}

func TestSnapshot(t *testing.T) {
	store := scenarioStore(t)
	snap := export.NewSnapshot(store.List())

	records := snap.Records()
	records[0].FirstName = "Mutated"
	assert.Equal(t, "Anna", snap.Records()[0].FirstName)
	assert.Equal(t, 1, snap.Len())
	assert.False(t, snap.TakenAt().IsZero())

	var buf bytes.Buffer
	assert.ErrorIs(t, snap.Save(&buf, "json"), export.ErrUnsupportedFormat)
}

func TestParseFormat(t *testing.T) {
	f, err := export.ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, export.FormatCSV, f)

	f, err = export.ParseFormat("xml")
	require.NoError(t, err)
	assert.Equal(t, export.FormatXML, f)

	_, err = export.ParseFormat("json")
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
}

func TestService_Export(t *testing.T) {
	ctx := context.Background()

	t.Run("writes to local storage", func(t *testing.T) {
		dir := t.TempDir()
		storage, err := file.NewLocalStorage(dir)
		require.NoError(t, err)
		svc := export.NewService(scenarioStore(t), storage, export.WithLogger(logger.Discard()))

		assert.False(t, svc.Exists(ctx, "records.csv"))
		obj, err := svc.Export(ctx, export.FormatCSV, "records.csv")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "records.csv"), obj.Location)
		assert.True(t, svc.Exists(ctx, "records.csv"))

		data, err := os.ReadFile(filepath.Join(dir, "records.csv"))
		require.NoError(t, err)
		assert.Equal(t, scenarioCSV, string(data))

		_, err = svc.Export(ctx, export.FormatXML, "records.xml")
		require.NoError(t, err)
		data, err = os.ReadFile(filepath.Join(dir, "records.xml"))
		require.NoError(t, err)
		assert.Equal(t, scenarioXML, string(data))
	})

	t.Run("passes rendered body and content type to storage", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("Put", mock.Anything, "out/records.xml", scenarioXML, "application/xml; charset=utf-8").
			Return(&file.Object{Path: "out/records.xml", Location: "s3://cabinet/out/records.xml"}, nil).Once()

		svc := export.NewService(scenarioStore(t), storage, export.WithLogger(logger.Discard()))
		obj, err := svc.Export(ctx, export.FormatXML, "out/records.xml")
		require.NoError(t, err)
		assert.Equal(t, "s3://cabinet/out/records.xml", obj.Location)
		storage.AssertExpectations(t)
	})

	t.Run("storage failure", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, file.ErrAccessDenied).Once()

		svc := export.NewService(scenarioStore(t), storage, export.WithLogger(logger.Discard()))
		_, err := svc.Export(ctx, export.FormatCSV, "records.csv")
		assert.ErrorIs(t, err, export.ErrExportFailed)
		assert.ErrorIs(t, err, file.ErrAccessDenied)
	})

	t.Run("unsupported format never reaches storage", func(t *testing.T) {
		storage := new(MockStorage)
		svc := export.NewService(scenarioStore(t), storage, export.WithLogger(logger.Discard()))
		_, err := svc.Export(ctx, "json", "records.json")
		assert.ErrorIs(t, err, export.ErrUnsupportedFormat)
		storage.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("exists and location delegate to storage", func(t *testing.T) {
		storage := new(MockStorage)
		storage.On("Exists", mock.Anything, "records.csv").Return(true)
		storage.On("Location", "records.csv").Return("/data/records.csv")

		svc := export.NewService(scenarioStore(t), storage)
		assert.True(t, svc.Exists(ctx, "records.csv"))
		assert.Equal(t, "/data/records.csv", svc.Location("records.csv"))
	})

	t.Run("requires dependencies", func(t *testing.T) {
		assert.Panics(t, func() { export.NewService(nil, new(MockStorage)) })
		assert.Panics(t, func() { export.NewService(scenarioStore(t), nil) })
	})

	t.Run("canceled context", func(t *testing.T) {
		storage, err := file.NewLocalStorage(t.TempDir())
		require.NoError(t, err)
		svc := export.NewService(scenarioStore(t), storage, export.WithLogger(logger.Discard()))

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = svc.Export(cctx, export.FormatCSV, "records.csv")
		assert.True(t, errors.Is(err, context.Canceled))
	})
}
