// Package notification queues payout emails into the outbox as part of a
// ledger unit of work.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

var subjects = map[entity.EmailTemplateType]string{
	entity.TemplatePayoutDeclared: "Your payout from %s has been declared",
	entity.TemplatePayoutCredited: "%s payout credited to your wallet",
}

// EnqueuePayoutEmail writes one notification for a payout. Investors who
// opted out, zero payouts and missing profiles are skipped. The outbox
// dedup key makes a repeated call a no-op.
func EnqueuePayoutEmail(
	ctx context.Context,
	queue adapter.EmailQueueRepository,
	template entity.EmailTemplateType,
	payout *entity.Payout,
	user *entity.User,
	property *entity.Property,
) error {
	if user == nil || !user.EmailNotifications || !payout.Amount.IsPositive() {
		return nil
	}

	data := map[string]interface{}{
		"name":            user.Name,
		"property_name":   property.Name,
		"amount":          valueobject.NewMoney(payout.Amount, payout.Currency).Format(),
		"shares":          payout.SharesAtRecord,
		"payout_id":       payout.ID.String(),
		"distribution_id": payout.DistributionID.String(),
	}

	job := entity.NewPayoutEmailJob(template, payout.ID, user, fmt.Sprintf(subjects[template], property.Name), data)
	if err := queue.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("failed to queue payout email: %w", err)
	}

	slog.Debug("Payout email queued",
		"template", template,
		"payout_id", payout.ID,
		"user_id", user.ID,
	)
	return nil
}
