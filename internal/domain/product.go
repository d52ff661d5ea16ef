package domain

// Product описывает запись каталога товаров. Движок заказов хранит только
// product_id и перечитывает запись при каждом расчёте цен.
type Product struct {
	ID   string
	Name string
	// Price — цена за единицу товара, неотрицательная.
	Price float64
	// VAT — ставка НДС как доля от цены (0.1 == 10%).
	VAT         float64
	Description string
}

// ValidateInvariants проверяет базовые инварианты записи каталога.
func (p *Product) ValidateInvariants() []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, ErrProductNameRequired)
	}
	if p.Price < 0 {
		errs = append(errs, ErrProductPriceNegative)
	}
	if p.VAT < 0 {
		errs = append(errs, ErrProductVATNegative)
	}

	return errs
}
