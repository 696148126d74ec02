package simulation

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"bidding-dashboard/internal/biddingerrors"
	"bidding-dashboard/internal/models"
	"bidding-dashboard/utils"

	"github.com/go-co-op/gocron/v2"
)

const (
	MinInterval = 100 * time.Millisecond

	stubSlots      = 30
	stubEventSlots = 25
	stubResetAbove = 5000
)

var firstNames = []string{
	"Darwin", "Paris", "Jackie", "Dominick", "Abel", "Nelson", "Jeff", "Ivan", "Gene", "Bill",
	"William", "Myron", "Clayton", "Bryant", "Johnie", "Graig", "Elliott", "Dante", "Benjamin", "Brant",
	"Bertram", "Morgan", "Johnny", "Jonathan", "Wilfred", "Robert", "Robin", "Mohammed", "Joey", "Bradly",
	"Denver", "Elden", "Ryan", "Leigh", "Jc", "Asa", "Hayden", "Darrell", "Von", "Gary",
	"Augustus", "Alphonso", "Logan", "Leon", "Marquis", "Miguel", "Ignacio", "Don", "Derrick", "Jarod",
}

// Publisher receives the generated updates
type Publisher interface {
	Publish(update models.Update)
}

// Bot pushes made-up live updates to dashboards for demos and screen checks.
// It never touches the ledger.
type Bot struct {
	scheduler gocron.Scheduler
	publisher Publisher

	mu      sync.Mutex
	job     gocron.Job
	rng     *rand.Rand
	highest [stubSlots]float64
}

// NewBot creates a bot with its own scheduler, started and idle
func NewBot(publisher Publisher) (*Bot, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("simulation: create scheduler: %w", err)
	}
	scheduler.Start()

	return &Bot{
		scheduler: scheduler,
		publisher: publisher,
		rng:       rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}, nil
}

// Start publishes a random update every interval, replacing any running schedule
func (b *Bot) Start(interval time.Duration) error {
	if interval < MinInterval {
		return fmt.Errorf("simulation: %w - %s is below %s", biddingerrors.ErrInvalidInterval, interval, MinInterval)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.removeJob(); err != nil {
		return err
	}

	job, err := b.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(b.tick),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("simulation: schedule bot: %w", err)
	}
	b.job = job

	utils.Info("simulation: bot started", map[string]any{"interval": interval.String()})
	return nil
}

// Stop cancels the running schedule, if any
func (b *Bot) Stop() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.removeJob(); err != nil {
		return err
	}
	utils.Info("simulation: bot stopped", nil)
	return nil
}

// Running reports whether a schedule is active
func (b *Bot) Running() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.job != nil
}

// Shutdown stops the scheduler for good
func (b *Bot) Shutdown() error {
	return b.scheduler.Shutdown()
}

func (b *Bot) removeJob() error {
	if b.job == nil {
		return nil
	}
	if err := b.scheduler.RemoveJob(b.job.ID()); err != nil {
		return fmt.Errorf("simulation: remove bot job: %w", err)
	}
	b.job = nil
	return nil
}

func (b *Bot) tick() {
	b.publisher.Publish(b.randomUpdate())
}

// randomUpdate builds one to five slot changes with as many events.
// Stub slot totals only grow, and all of them reset once one passes stubResetAbove.
func (b *Bot) randomUpdate() models.Update {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := 1 + b.rng.IntN(5)
	update := models.Update{
		Slots:        make([]models.SlotView, 0, n),
		Events:       make([]models.Event, 0, n),
		IsLiveUpdate: true,
	}

	for range n {
		index := b.rng.IntN(stubSlots)
		b.highest[index] += float64(1 + b.rng.IntN(100))
		highest := b.highest[index]
		if highest > stubResetAbove {
			b.highest = [stubSlots]float64{}
		}

		update.Slots = append(update.Slots, models.SlotView{
			Index:          index,
			HighestBid:     &highest,
			HighestBidders: []models.Bidder{{FirstName: b.randomName()}},
		})
		update.Events = append(update.Events, models.Event{
			BidID:  utils.NewBidID(),
			Slot:   1 + b.rng.IntN(stubEventSlots),
			Amount: math.Round((1+b.rng.Float64()*99)*100) / 100,
			Bidder: models.Bidder{FirstName: b.randomName()},
		})
	}
	return update
}

func (b *Bot) randomName() string {
	return firstNames[b.rng.IntN(len(firstNames))]
}
