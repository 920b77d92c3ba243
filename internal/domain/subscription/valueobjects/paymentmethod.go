package valueobjects

type PaymentMethod string

const (
	PaymentMethodBaridiMob    PaymentMethod = "baridimob"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodEPayment     PaymentMethod = "e_payment"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodBaridiMob:    true,
	PaymentMethodBankTransfer: true,
	PaymentMethodEPayment:     true,
}

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	return validPaymentMethods[m]
}
