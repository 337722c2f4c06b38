package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"ecommerce/internal/domain/model"
	repo "ecommerce/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ステータス遷移イベントの発行先。実装はinfra/events。
type PurchaseEventPublisher interface {
	PublishStatusChanged(ctx context.Context, ev model.PurchaseStatusChangedEvent) error
}

type PurchaseUsecase struct {
	purchases repo.PurchaseRepository
	sellers   repo.SellerRepository
	events    PurchaseEventPublisher
	log       *zap.Logger
}

// DI
func NewPurchaseUsecase(
	purchases repo.PurchaseRepository,
	sellers repo.SellerRepository,
	events PurchaseEventPublisher,
	log *zap.Logger,
) *PurchaseUsecase {
	return &PurchaseUsecase{
		purchases: purchases,
		sellers:   sellers,
		events:    events,
		log:       log,
	}
}

// 認証済み販売者が所有する購入をWaitingPaymentで作る
func (u *PurchaseUsecase) Create(ctx context.Context, callerSellerID string) (model.Purchase, error) {
	if callerSellerID == "" {
		return model.Purchase{}, NewHTTPError(http.StatusBadRequest, "invalid seller id")
	}

	_, err := u.sellers.FindByID(ctx, callerSellerID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Purchase{}, NewHTTPError(http.StatusBadRequest, "seller doesn't exist")
	}
	if err != nil {
		return model.Purchase{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	created, err := u.purchases.Create(ctx, model.Purchase{
		ID:       uuid.NewString(),
		SellerID: callerSellerID,
		Status:   model.PurchaseStatusWaitingPayment,
	})
	if err != nil {
		return model.Purchase{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

// 所有者のみ取得できる
func (u *PurchaseUsecase) Get(ctx context.Context, callerSellerID string, purchaseID string) (model.Purchase, error) {
	if callerSellerID == "" {
		return model.Purchase{}, NewHTTPError(http.StatusBadRequest, "invalid seller id")
	}

	p, err := u.purchases.FindByID(ctx, purchaseID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Purchase{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Purchase{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := CheckOwnership(callerSellerID, p.SellerID); err != nil {
		return model.Purchase{}, err
	}
	return p, nil
}

// 所有者のみ削除できる
func (u *PurchaseUsecase) Delete(ctx context.Context, callerSellerID string, purchaseID string) error {
	if callerSellerID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid seller id")
	}

	p, err := u.purchases.FindByID(ctx, purchaseID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := CheckOwnership(callerSellerID, p.SellerID); err != nil {
		return err
	}

	err = u.purchases.SoftDelete(ctx, purchaseID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// ステータス遷移。現在ステータスからの遷移可否はテーブル参照のみで判定する。
func (u *PurchaseUsecase) UpdateStatus(ctx context.Context, callerSellerID string, purchaseID string, requested model.PurchaseStatus) error {
	if callerSellerID == "" {
		return NewHTTPError(http.StatusBadRequest, "invalid seller id")
	}

	//テーブル参照の前に、範囲外・未定義の値を弾く
	if requested < model.PurchaseStatusWaitingPayment {
		return NewHTTPError(http.StatusBadRequest, "nothing to update")
	}
	if !requested.Known() {
		return NewHTTPError(http.StatusBadRequest, "invalid purchase status")
	}

	p, err := u.purchases.FindByID(ctx, purchaseID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_, err = u.sellers.FindByID(ctx, callerSellerID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "seller not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !p.Status.CanTransitionTo(requested) {
		return NewHTTPError(http.StatusBadRequest, "invalid purchase situation order")
	}

	err = u.purchases.UpdateStatus(ctx, purchaseID, requested)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	//イベント発行はベストエフォート（失敗しても遷移は成立）
	ev := model.PurchaseStatusChangedEvent{
		PurchaseID: purchaseID,
		SellerID:   p.SellerID,
		From:       p.Status,
		FromName:   p.Status.String(),
		To:         requested,
		ToName:     requested.String(),
		OccurredAt: time.Now(),
	}
	if err := u.events.PublishStatusChanged(ctx, ev); err != nil {
		u.log.Warn("could not publish purchase status event",
			zap.String("purchase_id", purchaseID),
			zap.Error(err),
		)
	}

	return nil
}
