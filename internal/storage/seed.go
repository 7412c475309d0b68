package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bridgeremit/remit/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("bad seed date %q: %v", s, err))
	}
	return t
}

func minute(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(fmt.Sprintf("bad seed date %q: %v", s, err))
	}
	return t
}

// seed loads the demo session data. Transactions and notifications are
// inserted oldest first so the seq column preserves recency order.
func (s *Store) seed(ctx context.Context) error {
	transactions := []model.Transaction{
		{ID: "5", Category: model.CategoryDonation, Amount: dec("50"), Currency: "USD", RecipientName: "Ethiopia Red Cross", Status: model.StatusCompleted, CreatedAt: day("2024-01-08"), Description: "Donation", BillerName: "Ethiopia Red Cross", ExchangeRate: dec("131.50"), Fee: dec("0.50"), ReceiveAmount: dec("50")},
		{ID: "4", Category: model.CategoryGift, Amount: dec("100"), Currency: "USD", RecipientName: "Mekonnen Family", Status: model.StatusCompleted, CreatedAt: day("2024-01-10"), Description: "Birthday Surprise", ExchangeRate: dec("131.50"), Fee: dec("3"), ReceiveAmount: dec("100")},
		{ID: "3", Category: model.CategoryCash, Amount: dec("200"), Currency: "USD", RecipientName: "Almaz Hailu", Status: model.StatusPending, CreatedAt: day("2024-01-13"), Description: "Cash Pickup", ExchangeRate: dec("131.50"), Fee: dec("4"), ReceiveAmount: dec("26200")},
		{ID: "2", Category: model.CategoryUtility, Amount: dec("150"), Currency: "USD", RecipientName: "Ethio Telecom", Status: model.StatusCompleted, CreatedAt: day("2024-01-14"), Description: "Airtime Top-up", BillerName: "Ethio Telecom", ExchangeRate: dec("131.50"), Fee: dec("1.50"), ReceiveAmount: dec("150")},
		{ID: "1", Category: model.CategoryBank, Amount: dec("500"), Currency: "USD", RecipientName: "Tadesse Bekele", Status: model.StatusCompleted, CreatedAt: day("2024-01-15"), Description: "Bank Transfer", BankName: "Commercial Bank of Ethiopia", AccountNumber: "1000123456789", ExchangeRate: dec("131.50"), Fee: dec("10"), ReceiveAmount: dec("65750")},
	}

	for i := range transactions {
		txn := &transactions[i]
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO transactions (id, category, amount, currency, recipient_name, status,
				description, bank_name, account_number, biller_name, fee, exchange_rate,
				receive_amount, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			txn.ID, string(txn.Category), txn.Amount.String(), txn.Currency,
			txn.RecipientName, string(txn.Status), txn.Description, txn.BankName,
			txn.AccountNumber, txn.BillerName, txn.Fee.String(),
			txn.ExchangeRate.String(), txn.ReceiveAmount.String(), txn.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to seed transaction %s: %w", txn.ID, err)
		}
	}

	notifications := []model.Notification{
		{ID: "4", Title: "Gift Delivered", Message: "Your birthday gift package has been delivered.", Severity: model.SeveritySuccess, CreatedAt: minute("2024-01-12 16:45"), TransactionID: "4", Read: true},
		{ID: "3", Title: "Pending Transfer", Message: "Your cash pickup of $200 to Almaz Hailu is being processed.", Severity: model.SeverityPending, CreatedAt: minute("2024-01-13 09:00"), TransactionID: "3", Read: true},
		{ID: "2", Title: "Payment Completed", Message: "Your bill payment of $150 to Ethio Telecom was successful.", Severity: model.SeveritySuccess, CreatedAt: minute("2024-01-14 10:15"), TransactionID: "2", Read: false},
		{ID: "1", Title: "Transfer Successful", Message: "Your transfer of $500 to Tadesse Bekele has been completed.", Severity: model.SeveritySuccess, CreatedAt: minute("2024-01-15 14:30"), TransactionID: "1", Read: false},
	}

	for _, n := range notifications {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO notifications (id, title, message, severity, transaction_id, read, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			n.ID, n.Title, n.Message, string(n.Severity), n.TransactionID, n.Read, n.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to seed notification %s: %w", n.ID, err)
		}
	}

	recipients := []model.Recipient{
		{ID: "1", Name: "Tadesse Bekele", Phone: "+251 911 123 456", BankAccount: "1000123456789", BankName: "Commercial Bank of Ethiopia", Relationship: "Family"},
		{ID: "2", Name: "Almaz Hailu", Phone: "+251 922 234 567", BankAccount: "1000234567890", BankName: "Dashen Bank", Relationship: "Friend"},
		{ID: "3", Name: "Mekonnen Tadesse", Phone: "+251 933 345 678", BankAccount: "1000345678901", BankName: "Awash Bank", Relationship: "Family"},
		{ID: "4", Name: "Sofia Ahmed", Phone: "+251 944 456 789", Relationship: "Friend"},
	}

	for _, r := range recipients {
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO recipients (id, name, phone, bank_account, bank_name, relationship)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			r.ID, r.Name, r.Phone, r.BankAccount, r.BankName, r.Relationship,
		); err != nil {
			return fmt.Errorf("failed to seed recipient %s: %w", r.ID, err)
		}
	}

	for _, pkg := range defaultGiftPackages() {
		if err := s.insertGiftPackage(ctx, &pkg); err != nil {
			return fmt.Errorf("failed to seed gift packages: %w", err)
		}
	}
	return nil
}

func defaultGiftPackages() []model.GiftPackage {
	return []model.GiftPackage{
		{
			ID:            "1",
			Title:         "Birthday Surprise",
			TitleAm:       "የልደት ስጦታ",
			Description:   "Custom cake, fresh flowers, $20 gift card, personalized card",
			DescriptionAm: "በብጁ ኬክ፣ የአበባ እርሻ፣ $20 ስጦታ ካርድ፣ የብጁ ካርድ",
			Price:         dec("50"),
			Icon:          "🎂",
			Items:         []string{"Custom cake", "Fresh flowers", "$20 gift card", "Personalized card"},
			ItemsAm:       []string{"በብጁ ኬክ", "የአበባ እርሻ", "$20 ስጦታ ካርድ", "የብጁ ካርድ"},
			Color:         "from-pink-400 to-rose-600",
			Active:        true,
		},
		{
			ID:            "2",
			Title:         "Holiday Joy",
			TitleAm:       "የበጋ ደስታ",
			Description:   "Holiday decorations, gourmet treats, $40 gift card, festive basket",
			DescriptionAm: "የበጋ ማስጌጫዎች፣ ጣፋጭ ምግቦች፣ $40 ስጦታ ካርድ፣ በጋ ቅርጫት",
			Price:         dec("100"),
			Icon:          "🎄",
			Items:         []string{"Holiday decorations", "Gourmet treats", "$40 gift card", "Festive basket"},
			ItemsAm:       []string{"የበጋ ማስጌጫ", "ጣፋጭ ምግብ", "$40 ስጦታ ካርድ", "በጋ ቅርጫት"},
			Color:         "from-green-400 to-emerald-600",
			Active:        true,
		},
		{
			ID:            "3",
			Title:         "Wedding Blessing",
			TitleAm:       "የጋብቻ ቡራኬ",
			Description:   "Gold jewelry, champagne, gift basket, wedding card",
			DescriptionAm: "ወርቅ ጌጥ፣ ሻምፓን፣ ስጦታ ቅርጫት፣ የጋብቻ ካርድ",
			Price:         dec("200"),
			Icon:          "💒",
			Items:         []string{"Gold jewelry", "Champagne", "Gift basket", "Wedding card"},
			ItemsAm:       []string{"ወርቅ ጌጥ", "ሻምፓን", "ስጦታ ቅርጫት", "የጋብቻ ካርድ"},
			Color:         "from-purple-400 to-violet-600",
			Active:        true,
		},
		{
			ID:            "4",
			Title:         "New Baby Celebration",
			TitleAm:       "የአዲስ ሕፃን በዓል",
			Description:   "Baby clothes, toys, baby care kit, stuffed animal",
			DescriptionAm: "የሕፃን ልብስ፣ መጫወቻዎች፣ የሕፃን እንክብካቤ ኪት፣ የፍጡን እንስሳ",
			Price:         dec("75"),
			Icon:          "👶",
			Items:         []string{"Baby clothes", "Toys", "Baby care kit", "Stuffed animal"},
			ItemsAm:       []string{"ሕፃን ልብስ", "መጫወቻ", "ሕፃን እንክብካቤ", "ፍጡን እንስሳ"},
			Color:         "from-blue-400 to-cyan-600",
			Active:        true,
		},
		{
			ID:            "5",
			Title:         "Anniversary Special",
			TitleAm:       "የዓመት በዓል ተለይቶ",
			Description:   "Romantic dinner, flowers, wine & chocolates, couple massage",
			DescriptionAm: "ሮማንቲክ ምሽት፣ አበባዎች፣ ወይንና ቸኮላት፣ ባልደረባ ማሳጅ",
			Price:         dec("150"),
			Icon:          "💕",
			Items:         []string{"Romantic dinner", "Flowers", "Wine & chocolates", "Couple massage"},
			ItemsAm:       []string{"ሮማንቲክ ምሽት", "አበባዎች", "ወይንና ቸኮላት", "ባልደረባ ማሳጅ"},
			Color:         "from-red-400 to-pink-600",
			Active:        true,
		},
		{
			ID:            "6",
			Title:         "Custom Gift",
			TitleAm:       "ብጁ ስጦታ",
			Description:   "Create a personalized gift package for any occasion",
			DescriptionAm: "ለማንኛውም አጋጣሚ ብጁ የስጦታ ፓኬጅ ፍጠር",
			Price:         decimal.Zero,
			Icon:          "✨",
			Items:         []string{"Choose your items", "Custom message", "Flexible delivery", "Any amount"},
			ItemsAm:       []string{"እቃዎችን ምረጥ", "ብጁ መልዕክት", "ተለዋዋጭ ማድረሻ", "ማንኛውም መጠን"},
			Color:         "from-yellow-400 to-orange-500",
			Active:        true,
		},
	}
}
