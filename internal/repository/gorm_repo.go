package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"bidding-dashboard/internal/biddingerrors"
	model "bidding-dashboard/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

type userRecord struct {
	UserID      string `gorm:"primaryKey"`
	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null"`
	Company     string
	TableNumber int  `gorm:"not null"`
	CanBid      bool `gorm:"not null"`
}

func (userRecord) TableName() string { return "users" }

// bidRecord.Seq gives recency ordering independent of clock resolution
type bidRecord struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	BidID     string    `gorm:"uniqueIndex;not null"`
	UserID    string    `gorm:"index;not null"`
	Slot      int       `gorm:"index;not null"`
	Amount    float64   `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (bidRecord) TableName() string { return "biddings" }

type leaderRow struct {
	Slot   int
	Amount float64
	UserID string
}

const leadersQuery = `
SELECT DISTINCT b.slot AS slot, b.amount AS amount, b.user_id AS user_id
FROM biddings b
JOIN (SELECT slot, MAX(amount) AS max_amount FROM biddings GROUP BY slot) m
  ON b.slot = m.slot AND b.amount = m.max_amount`

// GormRepo is an AuctionDB backed by a SQL database through gorm
type GormRepo struct {
	db *gorm.DB
}

// OpenGormRepo connects to sqlite or postgres and migrates the schema
func OpenGormRepo(driver, dsn string) (*GormRepo, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("open repository: unsupported driver %q", driver)
	}

	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open repository (%s): %w", driver, err)
	}

	if driver == "sqlite" {
		// sqlite allows a single writer; serialize through one connection
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("open repository (%s): %w", driver, err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return NewGormRepo(db)
}

// NewGormRepo wraps an open gorm connection and migrates the schema
func NewGormRepo(db *gorm.DB) (*GormRepo, error) {
	if err := db.AutoMigrate(&userRecord{}, &bidRecord{}); err != nil {
		return nil, fmt.Errorf("migrate repository: %w", err)
	}
	return &GormRepo{db: db}, nil
}

// Close releases the underlying connection pool
func (r *GormRepo) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AppendBid inserts one bid row
func (r *GormRepo) AppendBid(ctx context.Context, bid model.Bid) error {
	rec := bidRecord{
		BidID:     bid.BidID,
		UserID:    bid.UserID,
		Slot:      bid.Slot,
		Amount:    bid.Amount,
		CreatedAt: bid.CreatedAt,
	}
	err := r.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("append bid %s: %w", bid.BidID, biddingerrors.ErrDuplicateBid)
	}
	if err != nil {
		return fmt.Errorf("append bid %s: %w", bid.BidID, err)
	}
	return nil
}

// SlotLeaders returns the highest amount on a slot and every user who bid it
func (r *GormRepo) SlotLeaders(ctx context.Context, slot int) (model.SlotLeaders, error) {
	var rows []leaderRow
	err := r.db.WithContext(ctx).
		Raw(leadersQuery+" WHERE b.slot = ? ORDER BY user_id", slot).
		Scan(&rows).Error
	if err != nil {
		return model.SlotLeaders{}, fmt.Errorf("slot leaders for slot %d: %w", slot, err)
	}

	grouped := groupLeaders(rows)
	if len(grouped) == 0 {
		return model.SlotLeaders{}, fmt.Errorf("slot leaders for slot %d: %w", slot, biddingerrors.ErrNoBids)
	}
	return grouped[0], nil
}

// AllSlotLeaders returns the leaders of every slot that has bids in one query, slot ascending
func (r *GormRepo) AllSlotLeaders(ctx context.Context) ([]model.SlotLeaders, error) {
	var rows []leaderRow
	err := r.db.WithContext(ctx).
		Raw(leadersQuery + " ORDER BY slot, user_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("all slot leaders: %w", err)
	}
	return groupLeaders(rows), nil
}

// groupLeaders folds rows sorted by slot into one entry per slot
func groupLeaders(rows []leaderRow) []model.SlotLeaders {
	result := []model.SlotLeaders{}
	for _, row := range rows {
		n := len(result)
		if n > 0 && result[n-1].Slot == row.Slot {
			result[n-1].UserIDs = append(result[n-1].UserIDs, row.UserID)
			continue
		}
		result = append(result, model.SlotLeaders{Slot: row.Slot, Amount: row.Amount, UserIDs: []string{row.UserID}})
	}
	return result
}

// RecentBids returns up to limit bids, most recent first
func (r *GormRepo) RecentBids(ctx context.Context, limit int) ([]model.Bid, error) {
	if limit <= 0 {
		return []model.Bid{}, nil
	}
	var recs []bidRecord
	if err := r.db.WithContext(ctx).Order("seq DESC").Limit(limit).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("recent bids: %w", err)
	}
	return toBids(recs), nil
}

// BidsForSlot returns every bid of a slot in the order they were recorded
func (r *GormRepo) BidsForSlot(ctx context.Context, slot int) ([]model.Bid, error) {
	var recs []bidRecord
	if err := r.db.WithContext(ctx).Where("slot = ?", slot).Order("seq ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("bids for slot %d: %w", slot, err)
	}
	return toBids(recs), nil
}

// DeleteBid removes a single bid. The slot must match the recorded one.
func (r *GormRepo) DeleteBid(ctx context.Context, bidID string, slot int) error {
	res := r.db.WithContext(ctx).Where("bid_id = ? AND slot = ?", bidID, slot).Delete(&bidRecord{})
	if res.Error != nil {
		return fmt.Errorf("delete bid %s: %w", bidID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete bid %s on slot %d: %w", bidID, slot, biddingerrors.ErrBidNotFound)
	}
	return nil
}

// ClearBids wipes the whole bid history
func (r *GormRepo) ClearBids(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&bidRecord{}).Error; err != nil {
		return fmt.Errorf("clear bids: %w", err)
	}
	return nil
}

// GetUser returns a registered user
func (r *GormRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	var rec userRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, biddingerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return toUser(rec), nil
}

// ListUsers returns all users ordered by id
func (r *GormRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	var recs []userRecord
	if err := r.db.WithContext(ctx).Order("user_id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]model.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, toUser(rec))
	}
	return users, nil
}

// CreateUserIfMissing inserts the user unless the id exists, then returns the stored record
func (r *GormRepo) CreateUserIfMissing(ctx context.Context, user model.User) (model.User, error) {
	rec := userRecord{
		UserID:      user.UserID,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		Company:     user.Company,
		TableNumber: user.TableNumber,
		CanBid:      user.CanBid,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).
		Create(&rec).Error
	if err != nil {
		return model.User{}, fmt.Errorf("create user %s: %w", user.UserID, err)
	}
	return r.GetUser(ctx, user.UserID)
}

// ToggleUserPermission flips the bidding permission of a user
func (r *GormRepo) ToggleUserPermission(ctx context.Context, userID string) (model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rec userRecord
		if err := tx.Where("user_id = ?", userID).First(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return biddingerrors.ErrUserNotFound
			}
			return err
		}
		rec.CanBid = !rec.CanBid
		if err := tx.Model(&userRecord{}).Where("user_id = ?", userID).Update("can_bid", rec.CanBid).Error; err != nil {
			return err
		}
		user = toUser(rec)
		return nil
	})
	if err != nil {
		return model.User{}, fmt.Errorf("toggle permission for user %s: %w", userID, err)
	}
	return user, nil
}

// ClearUsers removes every registered user
func (r *GormRepo) ClearUsers(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&userRecord{}).Error; err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	return nil
}

func toBids(recs []bidRecord) []model.Bid {
	bids := make([]model.Bid, 0, len(recs))
	for _, rec := range recs {
		bids = append(bids, model.Bid{
			BidID:     rec.BidID,
			UserID:    rec.UserID,
			Slot:      rec.Slot,
			Amount:    rec.Amount,
			CreatedAt: rec.CreatedAt,
		})
	}
	return bids
}

func toUser(rec userRecord) model.User {
	return model.User{
		UserID:      rec.UserID,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		Company:     rec.Company,
		TableNumber: rec.TableNumber,
		CanBid:      rec.CanBid,
	}
}
