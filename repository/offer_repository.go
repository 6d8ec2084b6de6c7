package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// OfferOverlay is the session-scoped discount override. It lives in
// redis, not the database: it belongs to the browsing session and does
// not survive with the order.
type OfferOverlay struct {
	ProductID       uint            `json:"productId"`
	DiscountPercent int             `json:"discountPercent"`
	Price           decimal.Decimal `json:"price"`
}

type OfferStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOfferStore(rdb *redis.Client) *OfferStore {
	return &OfferStore{rdb: rdb, ttl: 24 * time.Hour}
}

func offerKey(customerID uint) string {
	return fmt.Sprintf("offer:%d", customerID)
}

// Set replaces any previous overlay; only one offer is active at a time.
func (s *OfferStore) Set(ctx context.Context, customerID uint, o *OfferOverlay) error {
	key := offerKey(customerID)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key,
		"product_id", strconv.FormatUint(uint64(o.ProductID), 10),
		"discount", strconv.Itoa(o.DiscountPercent),
		// stored as a string to keep the exact decimal representation
		"price", o.Price.StringFixed(2),
	)
	pipe.Expire(ctx, key, s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// Get returns nil with no error when no overlay is active.
func (s *OfferStore) Get(ctx context.Context, customerID uint) (*OfferOverlay, error) {
	fields, err := s.rdb.HGetAll(ctx, offerKey(customerID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, nil
	}

	productID, err := strconv.ParseUint(fields["product_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt offer overlay: %w", err)
	}
	discount, err := strconv.Atoi(fields["discount"])
	if err != nil {
		return nil, fmt.Errorf("corrupt offer overlay: %w", err)
	}
	price, err := decimal.NewFromString(fields["price"])
	if err != nil {
		return nil, fmt.Errorf("corrupt offer overlay: %w", err)
	}

	return &OfferOverlay{
		ProductID:       uint(productID),
		DiscountPercent: discount,
		Price:           price,
	}, nil
}

func (s *OfferStore) Clear(ctx context.Context, customerID uint) error {
	return s.rdb.Del(ctx, offerKey(customerID)).Err()
}
