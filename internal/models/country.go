package models

type CountryCode string

const (
	CountryIndonesia   CountryCode = "ID"
	CountryMalaysia    CountryCode = "MY"
	CountryThailand    CountryCode = "TH"
	CountryVietnam     CountryCode = "VN"
	CountryPhilippines CountryCode = "PH"
	CountrySingapore   CountryCode = "SG"
)

const (
	DefaultCountry    = CountryIndonesia
	DefaultPercentFee = 2.0
)

// CountryConfig is the static fee/VAT setup of one country of service.
type CountryConfig struct {
	Code           CountryCode `json:"code" yaml:"code"`
	Name           string      `json:"name" yaml:"name"`
	Rate           float64     `json:"rate" yaml:"rate"` // VAT rate on the fee, [0,1)
	Base           float64     `json:"base" yaml:"base"` // taxed fraction of the fee, (0,1]
	Symbol         string      `json:"symbol" yaml:"symbol"`
	Locale         string      `json:"locale" yaml:"locale"`
	Flag           string      `json:"flag" yaml:"flag"`
	DefaultAmount  float64     `json:"default_amount" yaml:"default_amount"`
	DefaultFlatFee float64     `json:"default_flat_fee" yaml:"default_flat_fee"`
}

// builtinCountries is the deployment table, in display order.
var builtinCountries = []CountryConfig{
	{
		Code:           CountryIndonesia,
		Name:           "Indonesia",
		Rate:           0.12,
		Base:           11.0 / 12.0, // DPP nilai lain
		Symbol:         "Rp",
		Locale:         "id-ID",
		Flag:           "🇮🇩",
		DefaultAmount:  160000,
		DefaultFlatFee: 1600,
	},
	{
		Code:           CountryMalaysia,
		Name:           "Malaysia",
		Rate:           0,
		Base:           1,
		Symbol:         "RM",
		Locale:         "ms-MY",
		Flag:           "🇲🇾",
		DefaultAmount:  47,
		DefaultFlatFee: 0.5,
	},
	{
		Code:           CountryThailand,
		Name:           "Thailand",
		Rate:           0.07,
		Base:           1,
		Symbol:         "฿",
		Locale:         "th-TH",
		Flag:           "🇹🇭",
		DefaultAmount:  370,
		DefaultFlatFee: 4,
	},
	{
		Code:           CountryVietnam,
		Name:           "Vietnam",
		Rate:           0.08,
		Base:           1,
		Symbol:         "₫",
		Locale:         "vi-VN",
		Flag:           "🇻🇳",
		DefaultAmount:  246000,
		DefaultFlatFee: 2500,
	},
	{
		Code:           CountryPhilippines,
		Name:           "Philippines",
		Rate:           0.12,
		Base:           1,
		Symbol:         "₱",
		Locale:         "en-PH",
		Flag:           "🇵🇭",
		DefaultAmount:  560,
		DefaultFlatFee: 6,
	},
	{
		Code:           CountrySingapore,
		Name:           "Singapore",
		Rate:           0,
		Base:           1,
		Symbol:         "$",
		Locale:         "en-SG",
		Flag:           "🇸🇬",
		DefaultAmount:  13.5,
		DefaultFlatFee: 0.15,
	},
}
