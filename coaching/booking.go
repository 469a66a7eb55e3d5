package coaching

import "encoding/json"

type ServiceType string

const (
	ServiceOneOnOne      ServiceType = "1-on-1"
	ServiceTeamVod       ServiceType = "Team VOD"
	ServiceScrimCoaching ServiceType = "Scrim Coaching"
	ServiceVodReview     ServiceType = "VOD Review"
	ServicePackage3      ServiceType = "3-Session Package"
)

var ServiceTypes = []ServiceType{ServiceOneOnOne, ServiceTeamVod, ServiceScrimCoaching, ServiceVodReview, ServicePackage3}

func (s ServiceType) Valid() bool {
	for _, known := range ServiceTypes {
		if s == known {
			return true
		}
	}
	return false
}

// Hourly services are priced per hour of duration; the rest are flat.
func (s ServiceType) Hourly() bool {
	return s == ServiceOneOnOne || s == ServiceTeamVod || s == ServiceScrimCoaching
}

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

const MaxPackageSessions = 3

type PackageSession struct {
	Date      Date
	Time      Clock
	Completed bool
}

func (p PackageSession) Scheduled() bool {
	return !p.Date.IsZero()
}

type Booking struct {
	ID                 ID            `json:"id"`
	ClientID           ID            `json:"clientId,omitempty"`
	ClientName         string        `json:"clientName"`
	Date               Date          `json:"date"`
	Time               Clock         `json:"time"`
	Service            ServiceType   `json:"service"`
	Duration           float64       `json:"duration"`
	Price              float64       `json:"price"`
	BasePrice          float64       `json:"basePrice"`
	Discount           int           `json:"discount"`
	DiscountReason     string        `json:"discountReason"`
	FinalPrice         float64       `json:"finalPrice"`
	PaymentStatus      PaymentStatus `json:"paymentStatus"`
	Completed          bool          `json:"completed"`
	Notes              string        `json:"notes"`
	PreSessionNotes    string        `json:"preSessionNotes"`
	DuringSessionNotes string        `json:"duringSessionNotes"`
	Homework           string        `json:"homework"`

	// Only meaningful for ServicePackage3. Stored flat as session1Date,
	// session1Time, session1Completed and so on.
	Sessions [MaxPackageSessions]PackageSession `json:"-"`
}

// Hours is the booked duration, reading a missing duration as one hour.
func (b Booking) Hours() float64 {
	if b.Duration == 0 {
		return 1
	}
	return b.Duration
}

// Earnings is the amount a booking contributes to revenue figures: the final
// price, else the unit price, else nothing.
func (b Booking) Earnings() float64 {
	if b.FinalPrice != 0 {
		return b.FinalPrice
	}
	return b.Price
}

type bookingFields Booking

// bookingWire flattens the package sessions into the session1..3 keys of
// the saved blob. Every key is always written, even for bookings that are
// not packages.
type bookingWire struct {
	bookingFields
	Session1Date      Date  `json:"session1Date"`
	Session1Time      Clock `json:"session1Time"`
	Session1Completed bool  `json:"session1Completed"`
	Session2Date      Date  `json:"session2Date"`
	Session2Time      Clock `json:"session2Time"`
	Session2Completed bool  `json:"session2Completed"`
	Session3Date      Date  `json:"session3Date"`
	Session3Time      Clock `json:"session3Time"`
	Session3Completed bool  `json:"session3Completed"`
}

func (b Booking) MarshalJSON() ([]byte, error) {
	w := bookingWire{
		bookingFields:     bookingFields(b),
		Session1Date:      b.Sessions[0].Date,
		Session1Time:      b.Sessions[0].Time,
		Session1Completed: b.Sessions[0].Completed,
		Session2Date:      b.Sessions[1].Date,
		Session2Time:      b.Sessions[1].Time,
		Session2Completed: b.Sessions[1].Completed,
		Session3Date:      b.Sessions[2].Date,
		Session3Time:      b.Sessions[2].Time,
		Session3Completed: b.Sessions[2].Completed,
	}
	return json.Marshal(w)
}

func (b *Booking) UnmarshalJSON(data []byte) error {
	var w bookingWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*b = Booking(w.bookingFields)
	b.Sessions = [MaxPackageSessions]PackageSession{
		{Date: w.Session1Date, Time: w.Session1Time, Completed: w.Session1Completed},
		{Date: w.Session2Date, Time: w.Session2Time, Completed: w.Session2Completed},
		{Date: w.Session3Date, Time: w.Session3Time, Completed: w.Session3Completed},
	}
	return nil
}
