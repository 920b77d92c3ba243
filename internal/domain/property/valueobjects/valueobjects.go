package valueobjects

// AdType says whether a listing is offered for sale or for rent.
type AdType string

const (
	AdTypeSale AdType = "sale"
	AdTypeRent AdType = "rent"
)

func (a AdType) IsValid() bool {
	return a == AdTypeSale || a == AdTypeRent
}

// ListingStatus is the availability of a listing.
type ListingStatus string

const (
	ListingAvailable ListingStatus = "available"
	ListingSold      ListingStatus = "sold"
	ListingRented    ListingStatus = "rented"
)

func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingAvailable, ListingSold, ListingRented:
		return true
	}
	return false
}

type RentPeriod string

const (
	RentDaily   RentPeriod = "daily"
	RentMonthly RentPeriod = "monthly"
	RentYearly  RentPeriod = "yearly"
)

func (p RentPeriod) IsValid() bool {
	switch p {
	case RentDaily, RentMonthly, RentYearly:
		return true
	}
	return false
}
