// Package i18n provides the static English/Amharic translation table.
// Lookup is a plain map access that falls back to returning the key,
// so a missing translation never breaks rendering.
package i18n

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Amharic Language = "am"
)

type entry struct {
	en string
	am string
}

var translations = map[string]entry{
	// Navigation
	"nav.home":         {en: "Home", am: "ቤት"},
	"nav.transactions": {en: "Transactions", am: "ተላላኪዎች"},
	"nav.settings":     {en: "Settings", am: "ማስተካከያዎች"},

	// Sign in
	"signin.title":    {en: "Sign In", am: "ግባ"},
	"signin.email":    {en: "Email", am: "ኢሜይል"},
	"signin.password": {en: "Password", am: "የይለፍ ቃል"},

	// Home
	"home.welcome":            {en: "Welcome back,", am: "እንኳዕ ደንበኛ,"},
	"home.sendMoney":          {en: "Send Money", am: "ገንዘብ ላክ"},
	"home.billPay":            {en: "Bill Pay", am: "ክፍያዎች"},
	"home.gifts":              {en: "Gifts", am: "ስጦታዎች"},
	"home.exchangeRates":      {en: "Exchange Rates", am: "የገንዘብ ለውጥ ተመን"},
	"home.giftPackages":       {en: "Gift Packages", am: "የስጦታ ፓኬጆች"},
	"home.recentTransactions": {en: "Recent Transactions", am: "ቅርብ ተላላኪዎች"},
	"home.viewAll":            {en: "View All", am: "ሁሉንም ይመልከቱ"},

	// Send money
	"send.title":          {en: "Send Money", am: "ገንዘብ ላክ"},
	"send.deliveryMethod": {en: "Delivery Method", am: "የማድረሻ መንገድ"},
	"send.bankTransfer":   {en: "Bank Transfer", am: "ባንክ ስታንስፈር"},
	"send.cashPickup":     {en: "Cash Pickup", am: "ገንዘብ መቀበር"},
	"send.youSend":        {en: "You Send", am: "ትልካለህ"},
	"send.continue":       {en: "Continue", am: "ቀጥል"},
	"send.selectBank":     {en: "Select Bank", am: "ባንክ ምረጥ"},
	"send.accountNumber":  {en: "Account Number", am: "መለያ ቁጥር"},
	"send.verifyAccount":  {en: "Verify Account", am: "መለያ ማረጋገጥ"},
	"send.confirm":        {en: "Confirm Transfer Details", am: "ስራውን አረጋግጥ"},
	"send.proceedPayment": {en: "Proceed to Payment", am: "ወደ ክፍያ ቀጥል"},

	// Gifts
	"gift.catalog":      {en: "Gift Packages", am: "የስጦታ ፓኬጆች"},
	"gift.customAmount": {en: "Custom Amount", am: "የራስዎ መጠን"},

	// Transactions
	"tx.title":   {en: "Transactions", am: "ተላላኪዎች"},
	"tx.history": {en: "History", am: "ታሪክ"},
	"tx.search":  {en: "Search transactions...", am: "ተላላኪዎችን ፈልግ..."},
	"tx.filter":  {en: "Filter", am: "አጣራ"},
}

// T returns the translation for key in the given language. Unknown keys
// return the key itself.
func T(key string, lang Language) string {
	e, ok := translations[key]
	if !ok {
		return key
	}
	if lang == Amharic {
		return e.am
	}
	return e.en
}
