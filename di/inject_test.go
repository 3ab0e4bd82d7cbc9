package di_test

import (
	"errors"
	"testing"

	"github.com/sghaida/locator/di"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Clock interface{ Now() int }

type fixedClock struct{ t int }

func (c fixedClock) Now() int { return c.t }

type DB struct{ DSN string }

type ReportService struct {
	DB    *DB
	Clock Clock
}

//
// -----------------------------------------------------------------------------
// Inject / Injected
// -----------------------------------------------------------------------------

// TestInject_Present verifies an injection point holds the resolved value.
func TestInject_Present(t *testing.T) {
	t.Parallel()

	r := di.NewRegistry()
	di.RegisterWithArg(r, func(dsn string) *DB { return &DB{DSN: dsn} })

	db := di.Inject[*DB](r, "postgres://prod")
	require.True(t, db.Present())

	got, ok := db.Get()
	require.True(t, ok)
	assert.Equal(t, "postgres://prod", got.DSN)
	assert.Same(t, got, db.MustGet())
	assert.Same(t, got, db.OrElse(&DB{DSN: "fallback"}))
}

// TestInject_Absent verifies an unregistered dependency yields an empty value.
func TestInject_Absent(t *testing.T) {
	t.Parallel()

	r := di.NewRegistry()
	clock := di.Inject[Clock](r)

	assert.False(t, clock.Present())
	got, ok := clock.Get()
	assert.False(t, ok)
	assert.Nil(t, got)

	assert.Equal(t, 42, clock.OrElse(fixedClock{t: 42}).Now())

	require.PanicsWithError(t, `di: type "di_test.Clock" not registered`, func() {
		_ = clock.MustGet()
	})
}

// TestInject_MissingArgumentPanics verifies Inject shares the fatal path of ResolveWith.
func TestInject_MissingArgumentPanics(t *testing.T) {
	t.Parallel()

	r := di.NewRegistry()
	di.RegisterWithArg(r, func(dsn string) *DB { return &DB{DSN: dsn} })

	assert.Panics(t, func() {
		_ = di.Inject[*DB](r)
	})
}

// TestInject_ZeroValue verifies the zero Injected is absent.
func TestInject_ZeroValue(t *testing.T) {
	t.Parallel()

	var i di.Injected[*DB]
	assert.False(t, i.Present())
	assert.Nil(t, i.OrElse(nil))
}

//
// -----------------------------------------------------------------------------
// Build / Resolving / Optionally
// -----------------------------------------------------------------------------

// TestBuild_WiresRequiredAndOptional verifies injectors resolve and bind in order.
func TestBuild_WiresRequiredAndOptional(t *testing.T) {
	t.Parallel()

	r := di.NewRegistry()
	di.RegisterWithArg(r, func(dsn string) *DB { return &DB{DSN: dsn} })
	di.Register(r, func() Clock { return fixedClock{t: 7} })

	svc, err := di.Build(
		func() *ReportService { return &ReportService{} },
		di.Resolving(r, func(s *ReportService, db *DB) { s.DB = db }, "sqlite"),
		nil,
		di.Optionally(r, func(s *ReportService, c Clock) { s.Clock = c }),
	)
	require.NoError(t, err)
	require.NotNil(t, svc.DB)
	assert.Equal(t, "sqlite", svc.DB.DSN)
	require.NotNil(t, svc.Clock)
	assert.Equal(t, 7, svc.Clock.Now())
}

// TestBuild_OptionalMissingIsNoOp verifies Optionally skips unregistered deps.
func TestBuild_OptionalMissingIsNoOp(t *testing.T) {
	t.Parallel()

	r := di.NewRegistry()

	svc, err := di.Build(
		func() *ReportService { return &ReportService{} },
		di.Optionally(r, func(s *ReportService, c Clock) { s.Clock = c }),
	)
	require.NoError(t, err)
	assert.Nil(t, svc.Clock)
}

// TestBuild_StopsOnFirstError verifies a failing injector stops the chain.
func TestBuild_StopsOnFirstError(t *testing.T) {
	t.Parallel()

	r := di.NewRegistry()
	di.Register(r, func() Clock { return fixedClock{t: 1} })

	svc, err := di.Build(
		func() *ReportService { return &ReportService{} },
		di.Resolving(r, func(s *ReportService, db *DB) { s.DB = db }),
		di.Resolving(r, func(s *ReportService, c Clock) { s.Clock = c }),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, di.ErrNotRegistered)

	var nr *di.NotRegisteredError
	require.True(t, errors.As(err, &nr))
	assert.Equal(t, di.KeyOf[*DB](), nr.Key)

	require.NotNil(t, svc)
	assert.Nil(t, svc.Clock)
}

// TestBuild_Errors covers the guard branches of Build and the injectors.
func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	r := di.NewRegistry()
	di.RegisterWithArg(r, func(dsn string) *DB { return &DB{DSN: dsn} })

	cases := []struct {
		name   string
		run    func() error
		wantIs error
	}{
		{
			name: "nil ctor",
			run: func() error {
				_, err := di.Build[ReportService](nil)
				return err
			},
			wantIs: di.ErrNilTarget,
		},
		{
			name: "ctor returns nil",
			run: func() error {
				_, err := di.Build(func() *ReportService { return nil })
				return err
			},
			wantIs: di.ErrNilTarget,
		},
		{
			name: "required nil target",
			run: func() error {
				return di.Resolving(r, func(s *ReportService, db *DB) { s.DB = db }, "x")(nil)
			},
			wantIs: di.ErrNilTarget,
		},
		{
			name: "optional nil target",
			run: func() error {
				return di.Optionally(r, func(s *ReportService, db *DB) { s.DB = db }, "x")(nil)
			},
			wantIs: di.ErrNilTarget,
		},
		{
			name: "required nil bind",
			run: func() error {
				return di.Resolving[ReportService, *DB](r, nil, "x")(&ReportService{})
			},
			wantIs: di.ErrNilBind,
		},
		{
			name: "optional nil bind",
			run: func() error {
				return di.Optionally[ReportService, *DB](r, nil, "x")(&ReportService{})
			},
			wantIs: di.ErrNilBind,
		},
		{
			name: "required missing argument is an error",
			run: func() error {
				return di.Resolving(r, func(s *ReportService, db *DB) { s.DB = db })(&ReportService{})
			},
			wantIs: di.ErrMissingArgument,
		},
		{
			name: "optional registered but wrong argument",
			run: func() error {
				return di.Optionally(r, func(s *ReportService, db *DB) { s.DB = db }, 42)(&ReportService{})
			},
			wantIs: di.ErrArgumentType,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.run()
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantIs)
		})
	}
}

// TestNilBindError_Message verifies the key context in the error message.
func TestNilBindError_Message(t *testing.T) {
	t.Parallel()

	err := di.Resolving[ReportService, *DB](di.NewRegistry(), nil)(&ReportService{})

	var nb *di.NilBindError
	require.ErrorAs(t, err, &nb)
	assert.Equal(t, di.KeyOf[*DB](), nb.Key)
	assert.Equal(t, `di: nil bind function for "*di_test.DB"`, err.Error())
}
