package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coachdesk/dashboard/coaching"
	"github.com/coachdesk/dashboard/dashboard"
	dashboard_mocks "github.com/coachdesk/dashboard/dashboard/mocks"
	"github.com/coachdesk/dashboard/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, time.March, 18, 15, 0, 0, 0, time.UTC)

func seedState() coaching.State {
	s := coaching.NewState()
	s.Clients = []coaching.Client{{
		ID: "alex", Name: "Alex", CurrentRank: coaching.RankGold, StartingRank: coaching.RankSilver, GoalRank: coaching.RankDiamond,
		RankHistory: []coaching.RankEntry{
			{Rank: coaching.RankSilver, Date: "2026-01-01", Note: "Starting rank"},
			{Rank: coaching.RankGold, Date: "2026-02-01"},
		},
	}}
	s.Bookings = []coaching.Booking{{
		ID: "b1", ClientID: "alex", ClientName: "Alex", Date: "2026-03-16", Time: "18:00",
		Service: coaching.ServiceOneOnOne, Duration: 2, Price: 40, BasePrice: 80, FinalPrice: 80,
		PaymentStatus: coaching.PaymentUnpaid,
	}}
	s.Leads = []coaching.Lead{
		{ID: "l1", Name: "Kim", Source: coaching.SourceTwitch, ContactInfo: "kim_tv", Status: coaching.LeadContacted},
		{ID: "l2", Name: "alex", Source: coaching.SourceReddit, Status: coaching.LeadNew},
	}
	s.Testimonials = []coaching.Testimonial{{ID: "t1", ClientID: "alex", ClientName: "Alex", Text: "Great", Rating: 5, Date: "2026-03-01"}}
	s.Reminders = []coaching.Reminder{
		{ID: "r1", Title: "Done", DueDate: "2026-03-01", Completed: true},
		{ID: "r2", Title: "Later", DueDate: "2026-03-25"},
		{ID: "r3", Title: "Soon", DueDate: "2026-03-19"},
	}
	return s
}

type testDeps struct {
	repo    *dashboard_mocks.MockRepository
	service *dashboard.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	repo := dashboard_mocks.NewMockRepository(ctrl)
	repo.EXPECT().Load(gomock.Any()).Return(seedState(), nil).Times(1)

	svc, err := dashboard.NewService(ctx, repo, dashboard.WithClock(func() time.Time { return now }))
	require.NoError(t, err)

	return ctrl, testDeps{repo: repo, service: svc, ctx: ctx}
}

// expectSave captures every saved state.
func (d testDeps) expectSave(times int) *[]coaching.State {
	saved := &[]coaching.State{}
	d.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s coaching.State) error {
		*saved = append(*saved, s)
		return nil
	}).Times(times)
	return saved
}

func price(p float64) *float64 { return &p }

func TestNewService(t *testing.T) {
	t.Run("load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dashboard_mocks.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(coaching.State{}, errors.New("disk gone")).Times(1)

		_, err := dashboard.NewService(context.Background(), repo)
		require.Error(t, err)
	})

	t.Run("loaded state is normalized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dashboard_mocks.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(coaching.State{
			Clients:  []coaching.Client{{ID: "1", Name: "Sam", CurrentRank: coaching.RankMaster}},
			Bookings: []coaching.Booking{{ID: "2", ClientName: "sam", Date: "2026-03-01"}},
		}, nil).Times(1)

		var saved coaching.State
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s coaching.State) error {
			saved = s
			return nil
		}).Times(1)

		svc, err := dashboard.NewService(context.Background(), repo, dashboard.WithClock(func() time.Time { return now }))
		require.NoError(t, err)

		snap := svc.Snapshot()
		assert.Equal(t, snap.Clients[0].RankHistory, saved.Clients[0].RankHistory, "repairs are written back")
		assert.Equal(t, coaching.ID("1"), saved.Bookings[0].ClientID)
		assert.Equal(t, coaching.DefaultSettings(), snap.Settings)
		assert.Equal(t, coaching.ID("1"), snap.Bookings[0].ClientID)
		assert.Equal(t, []coaching.RankEntry{{Rank: coaching.RankMaster, Date: "2026-03-18", Note: "Synced from current rank"}}, snap.Clients[0].RankHistory)
		assert.Equal(t, uint64(1), svc.Version())
	})

	t.Run("clean state is not rewritten", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dashboard_mocks.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(seedState(), nil).Times(1)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := dashboard.NewService(context.Background(), repo, dashboard.WithClock(func() time.Time { return now }))
		require.NoError(t, err)
	})

	t.Run("failing to save repairs fails the load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := dashboard_mocks.NewMockRepository(ctrl)
		repo.EXPECT().Load(gomock.Any()).Return(coaching.State{
			Clients: []coaching.Client{{ID: "1", Name: "Sam", CurrentRank: coaching.RankMaster}},
		}, nil).Times(1)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("read-only")).Times(1)

		_, err := dashboard.NewService(context.Background(), repo, dashboard.WithClock(func() time.Time { return now }))
		require.ErrorContains(t, err, "failed to save repaired dashboard")
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("prices the booking and adds the client", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		saved := testDeps.expectSave(1)

		b, err := testDeps.service.CreateBooking(testDeps.ctx, coaching.BookingInput{
			ClientName: "Jordan",
			Date:       "2026-03-20",
			Time:       "19:00",
			Service:    coaching.ServiceOneOnOne,
			Duration:   2,
			Discount:   10,
		})

		require.NoError(t, err)
		assert.Equal(t, 35.0, b.Price)
		assert.Equal(t, 70.0, b.BasePrice)
		assert.InDelta(t, 63.0, b.FinalPrice, 1e-9)
		assert.Equal(t, coaching.PaymentUnpaid, b.PaymentStatus)

		require.Len(t, *saved, 1)
		state := (*saved)[0]
		require.Len(t, state.Clients, 2)
		jordan := state.Clients[1]
		assert.Equal(t, "Jordan", jordan.Name)
		assert.Equal(t, "Auto-added from booking", jordan.Notes)
		assert.Equal(t, []coaching.RankEntry{{Rank: coaching.RankBronze, Date: "2026-03-18", Note: "Auto-added"}}, jordan.RankHistory)
		assert.Equal(t, jordan.ID, b.ClientID)
		assert.Equal(t, uint64(2), testDeps.service.Version())
	})

	t.Run("existing client matches case-insensitively", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		saved := testDeps.expectSave(1)

		b, err := testDeps.service.CreateBooking(testDeps.ctx, coaching.BookingInput{
			ClientName: "ALEX",
			Date:       "2026-03-20",
			Service:    coaching.ServiceVodReview,
			Duration:   3,
		})

		require.NoError(t, err)
		assert.Equal(t, coaching.ID("alex"), b.ClientID)
		assert.Equal(t, "Alex", b.ClientName)
		assert.Equal(t, 20.0, b.BasePrice)
		assert.Equal(t, 20.0, b.FinalPrice)
		assert.Len(t, (*saved)[0].Clients, 1)
	})

	t.Run("package seeds the first session", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		b, err := testDeps.service.CreateBooking(testDeps.ctx, coaching.BookingInput{
			ClientName: "Alex",
			Date:       "2026-03-20",
			Time:       "19:00",
			Service:    coaching.ServicePackage3,
		})

		require.NoError(t, err)
		assert.Equal(t, coaching.PackageSession{Date: "2026-03-20", Time: "19:00"}, b.Sessions[0])
		assert.Equal(t, 100.0, b.FinalPrice)
	})

	t.Run("invalid input is not saved", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, coaching.BookingInput{
			ClientName: "Alex", Date: "2026-03-20", Service: coaching.ServiceOneOnOne, Discount: 30,
		})
		require.ErrorIs(t, err, coaching.ErrInvalidDiscount)

		_, err = testDeps.service.CreateBooking(testDeps.ctx, coaching.BookingInput{Date: "2026-03-20"})
		require.ErrorIs(t, err, coaching.ErrInvalidInput)
		assert.Equal(t, uint64(1), testDeps.service.Version())
	})

	t.Run("failed save keeps the old state", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(1)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, coaching.BookingInput{
			ClientName: "Jordan", Date: "2026-03-20", Service: coaching.ServiceOneOnOne,
		})

		require.Error(t, err)
		snap := testDeps.service.Snapshot()
		assert.Len(t, snap.Bookings, 1)
		assert.Len(t, snap.Clients, 1)
		assert.Equal(t, uint64(1), testDeps.service.Version())
	})
}

func TestUpdateBooking(t *testing.T) {
	input := coaching.BookingInput{
		ClientName: "Alex",
		Date:       "2026-03-16",
		Time:       "18:00",
		Service:    coaching.ServiceOneOnOne,
		Duration:   2,
	}

	t.Run("same service keeps the stored price", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		b, err := testDeps.service.UpdateBooking(testDeps.ctx, "b1", input)

		require.NoError(t, err)
		assert.Equal(t, 40.0, b.Price)
		assert.Equal(t, 80.0, b.FinalPrice)
	})

	t.Run("changing the service resets the price", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		in := input
		in.Service = coaching.ServiceTeamVod
		b, err := testDeps.service.UpdateBooking(testDeps.ctx, "b1", in)

		require.NoError(t, err)
		assert.Equal(t, 40.0, b.Price)
		assert.Equal(t, 80.0, b.BasePrice)

		in.Service = coaching.ServiceScrimCoaching
		testDeps.expectSave(1)
		b, err = testDeps.service.UpdateBooking(testDeps.ctx, "b1", in)

		require.NoError(t, err)
		assert.Equal(t, 30.0, b.Price)
		assert.Equal(t, 60.0, b.FinalPrice)
	})

	t.Run("explicit price wins", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		in := input
		in.Price = price(50)
		in.Discount = 50
		b, err := testDeps.service.UpdateBooking(testDeps.ctx, "b1", in)

		require.NoError(t, err)
		assert.Equal(t, 100.0, b.BasePrice)
		assert.Equal(t, 50.0, b.FinalPrice)
		assert.Equal(t, coaching.PaymentUnpaid, b.PaymentStatus)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := testDeps.service.UpdateBooking(testDeps.ctx, "nope", input)
		require.ErrorIs(t, err, coaching.ErrBookingNotFound)
	})
}

func TestToggleAndDeleteBooking(t *testing.T) {
	t.Run("toggle flips completion", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(2)

		b, err := testDeps.service.ToggleBookingComplete(testDeps.ctx, "b1")
		require.NoError(t, err)
		require.True(t, b.Completed)

		b, err = testDeps.service.ToggleBookingComplete(testDeps.ctx, "b1")
		require.NoError(t, err)
		require.False(t, b.Completed)
	})

	t.Run("delete needs confirmation", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		err := testDeps.service.DeleteBooking(testDeps.ctx, "b1", false)
		require.ErrorIs(t, err, coaching.ErrConfirmationRequired)

		testDeps.expectSave(1)
		require.NoError(t, testDeps.service.DeleteBooking(testDeps.ctx, "b1", true))

		_, err = testDeps.service.FindBooking(testDeps.ctx, "b1")
		require.ErrorIs(t, err, coaching.ErrBookingNotFound)
	})

	t.Run("list views", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		upcoming, err := testDeps.service.ListBookings(testDeps.ctx, coaching.ViewUpcoming)
		require.NoError(t, err)
		require.Empty(t, upcoming)

		done, err := testDeps.service.ListBookings(testDeps.ctx, coaching.ViewCompleted)
		require.NoError(t, err)
		require.Len(t, done, 1)

		_, err = testDeps.service.ListBookings(testDeps.ctx, "archived")
		require.ErrorIs(t, err, coaching.ErrInvalidInput)
	})
}

func TestClients(t *testing.T) {
	t.Run("create seeds the history", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		c, err := testDeps.service.CreateClient(testDeps.ctx, coaching.ClientInput{
			Name:         "Sam",
			StartingRank: coaching.RankGold,
			CurrentRank:  coaching.RankPlatinum,
		})

		require.NoError(t, err)
		assert.Equal(t, coaching.RankPlatinum, c.CurrentRank)
		assert.Equal(t, coaching.RankDiamond, c.GoalRank)
		assert.Equal(t, []coaching.RankEntry{
			{Rank: coaching.RankGold, Date: "2026-03-18", Note: "Starting rank"},
			{Rank: coaching.RankPlatinum, Date: "2026-03-18", Note: "Current rank"},
		}, c.RankHistory)
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := testDeps.service.CreateClient(testDeps.ctx, coaching.ClientInput{Name: " alex "})
		require.ErrorIs(t, err, coaching.ErrDuplicateClient)
	})

	t.Run("rename follows linked records", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		saved := testDeps.expectSave(1)

		c, err := testDeps.service.UpdateClient(testDeps.ctx, "alex", coaching.ClientInput{
			Name:        "Alexandra",
			CurrentRank: coaching.RankGold,
		})

		require.NoError(t, err)
		assert.Len(t, c.RankHistory, 2, "unchanged rank adds no entry")
		state := (*saved)[0]
		assert.Equal(t, "Alexandra", state.Bookings[0].ClientName)
		assert.Equal(t, "Alexandra", state.Testimonials[0].ClientName)
	})

	t.Run("rank update", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		c, err := testDeps.service.AddRankUpdate(testDeps.ctx, "alex", coaching.RankUpdateInput{Rank: coaching.RankPlatinum, Note: "Climbed"})

		require.NoError(t, err)
		assert.Equal(t, coaching.RankPlatinum, c.CurrentRank)
		assert.Equal(t, coaching.RankEntry{Rank: coaching.RankPlatinum, Date: "2026-03-18", Note: "Climbed"}, c.RankHistory[len(c.RankHistory)-1])
	})

	t.Run("summaries", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		got := testDeps.service.ListClients(testDeps.ctx)
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].TotalSessions)
		assert.Equal(t, 80.0, got[0].TotalSpent)
		assert.Equal(t, coaching.Date("2026-03-16"), got[0].LastSession)
	})

	t.Run("delete unlinks records", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		require.ErrorIs(t, testDeps.service.DeleteClient(testDeps.ctx, "alex", false), coaching.ErrConfirmationRequired)

		saved := testDeps.expectSave(1)
		require.NoError(t, testDeps.service.DeleteClient(testDeps.ctx, "alex", true))

		state := (*saved)[0]
		assert.Empty(t, state.Clients)
		assert.Empty(t, state.Bookings[0].ClientID)
		assert.Equal(t, "Alex", state.Bookings[0].ClientName)
	})
}

func TestLeads(t *testing.T) {
	t.Run("create defaults", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		l, err := testDeps.service.CreateLead(testDeps.ctx, coaching.LeadInput{Name: "Pat", Source: coaching.SourceDiscord})

		require.NoError(t, err)
		assert.Equal(t, coaching.LeadNew, l.Status)
		assert.Equal(t, now, l.CreatedAt)
	})

	t.Run("convert", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		saved := testDeps.expectSave(1)

		c, err := testDeps.service.ConvertLead(testDeps.ctx, "l1")

		require.NoError(t, err)
		assert.Equal(t, "Kim", c.Name)
		assert.Equal(t, "kim_tv", c.Discord)
		assert.Equal(t, "Converted from lead (Twitch)", c.Notes)
		assert.Equal(t, []coaching.RankEntry{{Rank: coaching.RankBronze, Date: "2026-03-18", Note: "Converted from lead"}}, c.RankHistory)
		assert.Equal(t, coaching.LeadConverted, (*saved)[0].Leads[0].Status)
	})

	t.Run("already a client", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		_, err := testDeps.service.ConvertLead(testDeps.ctx, "l2")
		require.ErrorIs(t, err, coaching.ErrAlreadyClient)
		assert.Equal(t, coaching.LeadNew, testDeps.service.ListLeads(testDeps.ctx)[1].Status)
	})

	t.Run("delete", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		require.ErrorIs(t, testDeps.service.DeleteLead(testDeps.ctx, "missing", true), coaching.ErrLeadNotFound)
		require.ErrorIs(t, testDeps.service.DeleteLead(testDeps.ctx, "l1", false), coaching.ErrConfirmationRequired)

		testDeps.expectSave(1)
		require.NoError(t, testDeps.service.DeleteLead(testDeps.ctx, "l1", true))
		assert.Len(t, testDeps.service.ListLeads(testDeps.ctx), 1)
	})
}

func TestReminders(t *testing.T) {
	ctrl, testDeps := newTestDeps(t)
	defer ctrl.Finish()

	ids := func() []coaching.ID {
		var out []coaching.ID
		for _, r := range testDeps.service.ListReminders(testDeps.ctx) {
			out = append(out, r.ID)
		}
		return out
	}

	require.Equal(t, []coaching.ID{"r3", "r2", "r1"}, ids())

	testDeps.expectSave(3)

	r, err := testDeps.service.CreateReminder(testDeps.ctx, coaching.ReminderInput{Title: "Book venue"})
	require.NoError(t, err)
	assert.Equal(t, coaching.PriorityNormal, r.Priority)
	assert.False(t, r.Completed)

	toggled, err := testDeps.service.ToggleReminder(testDeps.ctx, "r1")
	require.NoError(t, err)
	assert.False(t, toggled.Completed)

	require.NoError(t, testDeps.service.DeleteReminder(testDeps.ctx, "r2"))
	require.Equal(t, []coaching.ID{"r1", "r3", r.ID}, ids())

	require.ErrorIs(t, testDeps.service.DeleteReminder(testDeps.ctx, "r2"), coaching.ErrReminderNotFound)
}

func TestTestimonials(t *testing.T) {
	ctrl, testDeps := newTestDeps(t)
	defer ctrl.Finish()

	testDeps.expectSave(1)

	tm, err := testDeps.service.CreateTestimonial(testDeps.ctx, coaching.TestimonialInput{ClientName: "alex", Text: "Climbed two ranks", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, coaching.ID("alex"), tm.ClientID)
	assert.Equal(t, "Alex", tm.ClientName)
	assert.Equal(t, coaching.Date("2026-03-18"), tm.Date)

	require.ErrorIs(t, testDeps.service.DeleteTestimonial(testDeps.ctx, tm.ID, false), coaching.ErrConfirmationRequired)
	require.Len(t, testDeps.service.ListTestimonials(testDeps.ctx), 2)
}

func TestWorkspace(t *testing.T) {
	t.Run("settings", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		in := coaching.SettingsInput{WeeklyGoal: 12, Pricing: coaching.PricingInput{OneOnOne: 45, TeamVod: 50, ScrimCoaching: 35, VodReview: 25, Package3Session: 120}}
		got, err := testDeps.service.UpdateSettings(testDeps.ctx, in)

		require.NoError(t, err)
		assert.Equal(t, 45.0, got.Pricing.OneOnOne)
		assert.Equal(t, got, testDeps.service.Settings(testDeps.ctx))

		_, err = testDeps.service.UpdateSettings(testDeps.ctx, coaching.SettingsInput{WeeklyGoal: -1})
		require.ErrorIs(t, err, coaching.ErrInvalidInput)
	})

	t.Run("notes", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.expectSave(1)

		_, err := testDeps.service.UpdateNotes(testDeps.ctx, coaching.Notes{Availability: "Weekends"})
		require.NoError(t, err)
		assert.Equal(t, "Weekends", testDeps.service.Notes(testDeps.ctx).Availability)
	})

	t.Run("dashboard and projections", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		d := testDeps.service.Dashboard(testDeps.ctx)
		assert.Equal(t, 2.0, d.WeekHours)
		assert.Equal(t, 80.0, d.WeekEarnings)
		assert.Equal(t, 20, d.GoalProgress)
		assert.Equal(t, 1, d.Streak)

		p := testDeps.service.Projections(testDeps.ctx)
		assert.Equal(t, 0.5, p.AvgWeeklyHours)
		assert.Equal(t, 40.0, p.AvgHourlyRate)

		days, err := testDeps.service.Calendar(testDeps.ctx, 2026, time.March)
		require.NoError(t, err)
		require.Len(t, days[15].Bookings, 1)

		_, err = testDeps.service.Calendar(testDeps.ctx, 2026, 13)
		require.ErrorIs(t, err, coaching.ErrInvalidInput)
	})

	t.Run("export", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		raw, name, err := testDeps.service.Export(testDeps.ctx)

		require.NoError(t, err)
		assert.Equal(t, "coaching-data-2026-03-18.json", name)

		decoded, err := storage.Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, testDeps.service.Snapshot(), decoded)
	})

	t.Run("malformed import leaves state untouched", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.Import(testDeps.ctx, []byte("{not json"))
		require.ErrorIs(t, err, storage.ErrMalformedBlob)
		assert.Len(t, testDeps.service.Snapshot().Bookings, 1)
	})

	t.Run("import replaces and reloads", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		var saved coaching.State
		testDeps.repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s coaching.State) error {
			saved = s
			return nil
		}).Times(1)
		testDeps.repo.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) (coaching.State, error) {
			return saved.Clone(), nil
		}).Times(1)

		err := testDeps.service.Import(testDeps.ctx, []byte(`{"bookings":[{"id":1,"clientName":"Lee","date":"2026-03-17","service":"1-on-1","price":35,"finalPrice":35}],"clients":[{"id":2,"name":"Lee","currentRank":"Silver"}]}`))

		require.NoError(t, err)
		snap := testDeps.service.Snapshot()
		require.Len(t, snap.Bookings, 1)
		assert.Equal(t, coaching.ID("2"), snap.Bookings[0].ClientID)
		assert.Empty(t, snap.Leads)
		assert.Equal(t, coaching.DefaultSettings(), snap.Settings)
		assert.Equal(t, uint64(3), testDeps.service.Version())
	})
}
