package db

import "github.com/estateshare/backend/internal/integration/persistence/model"

// Models lists every table owned by the ledger.
func Models() []interface{} {
	return []interface{}{
		&model.UserModel{},
		&model.PropertyModel{},
		&model.InvestmentModel{},
		&model.RentalStatementModel{},
		&model.DistributionModel{},
		&model.PayoutModel{},
		&model.TransactionModel{},
		&model.EmailQueueModel{},
	}
}
