package coaching

type PackageSessionInput struct {
	Date      Date  `json:"date" validate:"omitempty,date"`
	Time      Clock `json:"time" validate:"omitempty,clock"`
	Completed bool  `json:"completed"`
}

// BookingInput carries the editable fields of a booking. A nil Price means
// "use the configured price of the service".
type BookingInput struct {
	ClientName         string                `json:"clientName" validate:"required,max=120"`
	Date               Date                  `json:"date" validate:"required,date"`
	Time               Clock                 `json:"time" validate:"omitempty,clock"`
	Service            ServiceType           `json:"service" validate:"required,service"`
	Duration           float64               `json:"duration" validate:"gte=0,lte=24"`
	Price              *float64              `json:"price" validate:"omitempty,gte=0"`
	Discount           int                   `json:"discount"`
	DiscountReason     string                `json:"discountReason" validate:"max=200"`
	PaymentStatus      PaymentStatus         `json:"paymentStatus" validate:"omitempty,oneof=unpaid paid"`
	Completed          bool                  `json:"completed"`
	Notes              string                `json:"notes"`
	PreSessionNotes    string                `json:"preSessionNotes"`
	DuringSessionNotes string                `json:"duringSessionNotes"`
	Homework           string                `json:"homework"`
	Sessions           []PackageSessionInput `json:"sessions" validate:"max=3,dive"`
}

type ClientInput struct {
	Name               string `json:"name" validate:"required,max=120"`
	Discord            string `json:"discord" validate:"max=120"`
	CurrentRank        Rank   `json:"currentRank" validate:"omitempty,rank"`
	StartingRank       Rank   `json:"startingRank" validate:"omitempty,rank"`
	GoalRank           Rank   `json:"goalRank" validate:"omitempty,rank"`
	Notes              string `json:"notes"`
	ManualSessionCount *int   `json:"manualSessionCount" validate:"omitempty,gte=0"`
}

type RankUpdateInput struct {
	Rank Rank   `json:"rank" validate:"required,rank"`
	Note string `json:"note" validate:"max=200"`
}

type LeadInput struct {
	Name        string     `json:"name" validate:"required,max=120"`
	Source      LeadSource `json:"source" validate:"required,leadsource"`
	ContactInfo string     `json:"contactInfo" validate:"max=200"`
	Status      LeadStatus `json:"status" validate:"omitempty,oneof=new contacted interested converted lost"`
	Notes       string     `json:"notes"`
}

type ReminderInput struct {
	Title    string   `json:"title" validate:"required,max=200"`
	DueDate  Date     `json:"dueDate" validate:"omitempty,date"`
	Notes    string   `json:"notes"`
	Priority Priority `json:"priority" validate:"omitempty,oneof=low normal high"`
}

type TestimonialInput struct {
	ClientName string `json:"clientName" validate:"required,max=120"`
	Text       string `json:"text" validate:"required"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Date       Date   `json:"date" validate:"omitempty,date"`
}

type SettingsInput struct {
	WeeklyGoal float64      `json:"weeklyGoal" validate:"gte=0,lte=168"`
	Pricing    PricingInput `json:"pricing"`
}

type PricingInput struct {
	OneOnOne        float64 `json:"oneOnOne" validate:"gte=0"`
	TeamVod         float64 `json:"teamVod" validate:"gte=0"`
	ScrimCoaching   float64 `json:"scrimCoaching" validate:"gte=0"`
	VodReview       float64 `json:"vodReview" validate:"gte=0"`
	Package3Session float64 `json:"package3Session" validate:"gte=0"`
}

func (in SettingsInput) Settings() Settings {
	return Settings{WeeklyGoal: in.WeeklyGoal, Pricing: Pricing(in.Pricing)}
}
