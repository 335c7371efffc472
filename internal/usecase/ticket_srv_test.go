package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/pkg/metrics"
	"ticket-purchase/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type call struct {
	collaborator string
	accountID    int64
	value        int
}

// fakeCollaborators records payment and reservation calls in one ordered log
type fakeCollaborators struct {
	calls      []call
	paymentErr error
	seatErr    error
}

func (f *fakeCollaborators) MakePayment(ctx context.Context, accountID int64, amount int) error {
	f.calls = append(f.calls, call{collaborator: "payment", accountID: accountID, value: amount})
	return f.paymentErr
}

func (f *fakeCollaborators) ReserveSeats(ctx context.Context, accountID int64, seats int) error {
	f.calls = append(f.calls, call{collaborator: "reservation", accountID: accountID, value: seats})
	return f.seatErr
}

func newTestService(fake *fakeCollaborators) (*ticketService, *metrics.PurchaseMetrics, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.NewPurchaseMetrics(prometheus.NewRegistry())
	svc := NewTicketService(fake, fake, m, zap.New(core)).(*ticketService)
	svc.now = func() time.Time { return time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC) }
	return svc, m, logs
}

func TestTicketService_PurchaseTickets(t *testing.T) {
	t.Parallel()

	t.Run("valid request pays then reserves", func(t *testing.T) {
		fake := &fakeCollaborators{}
		svc, m, _ := newTestService(fake)

		req := entity.NewPurchaseRequest(99, adult(10), child(5), infant(5))
		res, err := svc.PurchaseTickets(context.Background(), req)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := []call{
			{collaborator: "payment", accountID: 99, value: 250},
			{collaborator: "reservation", accountID: 99, value: 15},
		}
		if len(fake.calls) != len(want) {
			t.Fatalf("expected %d calls, got %d: %+v", len(want), len(fake.calls), fake.calls)
		}
		for i := range want {
			if fake.calls[i] != want[i] {
				t.Fatalf("call %d: expected %+v, got %+v", i, want[i], fake.calls[i])
			}
		}

		if res.TotalTickets != 20 || res.TotalPrice != 250 || res.TotalSeats != 15 {
			t.Fatalf("unexpected totals %+v", res.QuoteResponse)
		}
		if !strings.HasPrefix(res.Reference, "TKT-20250102-100000-") {
			t.Fatalf("unexpected reference %s", res.Reference)
		}
		if len(res.Lines) != 3 {
			t.Fatalf("expected 3 lines, got %d", len(res.Lines))
		}

		if got := testutil.ToFloat64(m.Purchases.WithLabelValues(metrics.ResultAccepted, "")); got != 1 {
			t.Fatalf("expected 1 accepted purchase, got %v", got)
		}
		if got := testutil.ToFloat64(m.TicketsSold.WithLabelValues("CHILD")); got != 5 {
			t.Fatalf("expected 5 child tickets sold, got %v", got)
		}
		if got := testutil.ToFloat64(m.AmountCharged); got != 250 {
			t.Fatalf("expected 250 charged, got %v", got)
		}
	})

	t.Run("invalid request makes no calls", func(t *testing.T) {
		cases := map[string]struct {
			req  *entity.PurchaseRequest
			want error
		}{
			"invalid account":  {entity.NewPurchaseRequest(0, adult(1)), entity.ErrInvalidAccount},
			"too many tickets": {entity.NewPurchaseRequest(1, adult(21)), entity.ErrInvalidTicketCount},
			"no adult":         {entity.NewPurchaseRequest(1, child(2)), entity.ErrNoAdultTickets},
			"too many infants": {entity.NewPurchaseRequest(1, adult(1), infant(2)), entity.ErrInsufficientAdultsForInfants},
		}

		for name, tc := range cases {
			fake := &fakeCollaborators{}
			svc, m, logs := newTestService(fake)

			res, err := svc.PurchaseTickets(context.Background(), tc.req)
			if !errors.Is(err, tc.want) {
				t.Fatalf("%s: expected %v, got %v", name, tc.want, err)
			}
			if res != nil {
				t.Fatalf("%s: expected nil response", name)
			}
			if len(fake.calls) != 0 {
				t.Fatalf("%s: expected no collaborator calls, got %+v", name, fake.calls)
			}

			var purchaseErr *entity.PurchaseError
			if !errors.As(err, &purchaseErr) {
				t.Fatalf("%s: expected unwrapped PurchaseError, got %T", name, err)
			}
			if got := testutil.ToFloat64(m.Purchases.WithLabelValues(metrics.ResultRejected, string(purchaseErr.Kind))); got != 1 {
				t.Fatalf("%s: expected rejection counted, got %v", name, got)
			}
			if logs.FilterMessage("Purchase rejected").Len() != 1 {
				t.Fatalf("%s: expected rejection to be logged", name)
			}
		}
	})

	t.Run("payment failure skips reservation", func(t *testing.T) {
		fake := &fakeCollaborators{paymentErr: errors.New("gateway down")}
		svc, m, _ := newTestService(fake)

		_, err := svc.PurchaseTickets(context.Background(), entity.NewPurchaseRequest(1, adult(1)))
		if err == nil || !strings.Contains(err.Error(), "make payment") {
			t.Fatalf("expected wrapped payment error, got %v", err)
		}
		var purchaseErr *entity.PurchaseError
		if errors.As(err, &purchaseErr) {
			t.Fatalf("collaborator failure must not look like a validation error")
		}
		if len(fake.calls) != 1 || fake.calls[0].collaborator != "payment" {
			t.Fatalf("expected only the payment call, got %+v", fake.calls)
		}
		if got := testutil.ToFloat64(m.Purchases.WithLabelValues(metrics.ResultFailed, "payment")); got != 1 {
			t.Fatalf("expected payment failure counted, got %v", got)
		}
	})

	t.Run("reservation failure is returned", func(t *testing.T) {
		fake := &fakeCollaborators{seatErr: errors.New("queue closed")}
		svc, _, _ := newTestService(fake)

		_, err := svc.PurchaseTickets(context.Background(), entity.NewPurchaseRequest(1, adult(1)))
		if err == nil || !strings.Contains(err.Error(), "reserve seats") {
			t.Fatalf("expected wrapped reservation error, got %v", err)
		}
		if len(fake.calls) != 2 {
			t.Fatalf("expected payment and reservation calls, got %+v", fake.calls)
		}
	})

	t.Run("request id is logged", func(t *testing.T) {
		fake := &fakeCollaborators{}
		svc, _, logs := newTestService(fake)

		ctx := utils.SetRequestIDContext(context.Background(), "req-1")
		if _, err := svc.PurchaseTickets(ctx, entity.NewPurchaseRequest(1, adult(1))); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		entries := logs.FilterMessage("Tickets purchased").All()
		if len(entries) != 1 {
			t.Fatalf("expected one purchase log, got %d", len(entries))
		}
		if entries[0].ContextMap()["request_id"] != "req-1" {
			t.Fatalf("expected request_id in log, got %v", entries[0].ContextMap())
		}
	})
}

func TestTicketService_QuoteTickets(t *testing.T) {
	t.Parallel()

	fake := &fakeCollaborators{}
	svc, _, _ := newTestService(fake)

	quote, err := svc.QuoteTickets(context.Background(), entity.NewPurchaseRequest(3, adult(1), child(1)))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if quote.TotalPrice != 30 || quote.TotalSeats != 2 || quote.AccountID != 3 {
		t.Fatalf("unexpected quote %+v", quote)
	}
	if len(fake.calls) != 0 {
		t.Fatalf("quote must not call collaborators, got %+v", fake.calls)
	}

	_, err = svc.QuoteTickets(context.Background(), entity.NewPurchaseRequest(3, infant(1)))
	if !errors.Is(err, entity.ErrNoAdultTickets) {
		t.Fatalf("expected ErrNoAdultTickets, got %v", err)
	}
}

func TestTicketService_Prices(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestService(&fakeCollaborators{})
	prices := svc.Prices(context.Background())

	if prices.MaxTicketsPerPurchase != 20 {
		t.Fatalf("expected max 20, got %d", prices.MaxTicketsPerPurchase)
	}
	want := map[entity.TicketCategory][2]int{
		entity.TicketCategoryAdult:  {20, 1},
		entity.TicketCategoryChild:  {10, 1},
		entity.TicketCategoryInfant: {0, 0},
	}
	if len(prices.Prices) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(prices.Prices))
	}
	for _, p := range prices.Prices {
		if w := want[p.Type]; w[0] != p.Price || w[1] != p.Seats {
			t.Fatalf("unexpected rate for %s: %+v", p.Type, p)
		}
	}
}
