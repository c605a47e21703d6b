package seed

import "github.com/google/uuid"

// Fixtures is the static dataset the seeder writes: four flat record sets
// matching the store schema. Invoice dates are YYYY-MM-DD strings and get
// parsed at insert time.
type Fixtures struct {
	Users     []UserFixture
	Customers []CustomerFixture
	Invoices  []InvoiceFixture
	Revenue   []RevenueFixture
}

type UserFixture struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
}

type CustomerFixture struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
}

type InvoiceFixture struct {
	CustomerID uuid.UUID
	Amount     int64 // cents
	Status     string
	Date       string
}

type RevenueFixture struct {
	Month   string
	Revenue int64
}

var (
	userID = uuid.MustParse("410544b2-4001-4271-9855-fec4b6a6442a")

	customerEvil    = uuid.MustParse("d6e15727-9fe1-45cb-a8af-66db2fe4a1b1")
	customerDelba   = uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a")
	customerLee     = uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a")
	customerMichael = uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2")
	customerAmy     = uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9")
	customerBalazs  = uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb")
)

// Default returns the built-in dashboard dataset: one demo user, six
// customers, thirteen invoices and a twelve-month revenue series.
func Default() Fixtures {
	return Fixtures{
		Users: []UserFixture{
			{ID: userID, Name: "User", Email: "user@nextmail.com", Password: "123456"},
		},
		Customers: []CustomerFixture{
			{ID: customerEvil, Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
			{ID: customerDelba, Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
			{ID: customerLee, Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
			{ID: customerMichael, Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
			{ID: customerAmy, Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
			{ID: customerBalazs, Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
		},
		Invoices: []InvoiceFixture{
			{CustomerID: customerEvil, Amount: 15795, Status: "pending", Date: "2022-12-06"},
			{CustomerID: customerDelba, Amount: 20348, Status: "pending", Date: "2022-11-14"},
			{CustomerID: customerAmy, Amount: 3040, Status: "paid", Date: "2022-10-29"},
			{CustomerID: customerMichael, Amount: 44800, Status: "paid", Date: "2023-09-10"},
			{CustomerID: customerBalazs, Amount: 34577, Status: "pending", Date: "2023-08-05"},
			{CustomerID: customerLee, Amount: 54246, Status: "pending", Date: "2023-07-16"},
			{CustomerID: customerEvil, Amount: 666, Status: "pending", Date: "2023-06-27"},
			{CustomerID: customerMichael, Amount: 32545, Status: "paid", Date: "2023-06-09"},
			{CustomerID: customerAmy, Amount: 1250, Status: "paid", Date: "2023-06-17"},
			{CustomerID: customerBalazs, Amount: 8546, Status: "paid", Date: "2023-06-07"},
			{CustomerID: customerDelba, Amount: 500, Status: "paid", Date: "2023-08-19"},
			{CustomerID: customerBalazs, Amount: 8945, Status: "paid", Date: "2023-06-03"},
			{CustomerID: customerLee, Amount: 1000, Status: "paid", Date: "2022-06-05"},
		},
		Revenue: []RevenueFixture{
			{Month: "Jan", Revenue: 2000},
			{Month: "Feb", Revenue: 1800},
			{Month: "Mar", Revenue: 2200},
			{Month: "Apr", Revenue: 2500},
			{Month: "May", Revenue: 2300},
			{Month: "Jun", Revenue: 3200},
			{Month: "Jul", Revenue: 3500},
			{Month: "Aug", Revenue: 3700},
			{Month: "Sep", Revenue: 2500},
			{Month: "Oct", Revenue: 2800},
			{Month: "Nov", Revenue: 3000},
			{Month: "Dec", Revenue: 4800},
		},
	}
}
