package cli

import (
	"coursework/internal/config"
	"coursework/internal/models"
	"coursework/internal/storage"
	"coursework/internal/storefront"
)

// Collection names inside the SQLite database.
const (
	collProducts = "products"
	collFAQs     = "faqs"
	collLoyalty  = "loyalty"
	collFeedback = "feedback"
)

func jsonStores(cfg config.StorefrontConfig) storefront.Stores {
	return storefront.Stores{
		Products: storage.NewJSONFile(cfg.ProductsFile, storefront.ProductKey),
		FAQs:     storage.NewJSONFile(cfg.FAQsFile, storefront.FAQKey),
		Loyalty:  storage.NewJSONFile(cfg.LoyaltyFile, storefront.LoyaltyKey),
		Feedback: storage.NewJSONFile(cfg.FeedbackFile, storefront.FeedbackKey),
	}
}

func sqliteStores(db *storage.DB) storefront.Stores {
	return storefront.Stores{
		Products: storage.NewSQLite[models.Product](db, collProducts, storefront.ProductKey),
		FAQs:     storage.NewSQLite[models.FAQ](db, collFAQs, storefront.FAQKey),
		Loyalty:  storage.NewSQLite[models.LoyaltyUser](db, collLoyalty, storefront.LoyaltyKey),
		Feedback: storage.NewSQLite[models.Feedback](db, collFeedback, storefront.FeedbackKey),
	}
}

// openStores returns the storefront repositories for the configured driver
// and a func releasing them.
func openStores(cfg *config.Config) (storefront.Stores, func() error, error) {
	if cfg.Storage.Driver != "sqlite" {
		return jsonStores(cfg.Storefront), func() error { return nil }, nil
	}
	db, err := storage.OpenSQLite(cfg.Storage.SQLitePath)
	if err != nil {
		return storefront.Stores{}, nil, err
	}
	return sqliteStores(db), db.Close, nil
}
