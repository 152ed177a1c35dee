// Package airport resolves airport codes used by partner availability APIs to city names.
package airport

import "strings"

var cityNames = map[string]string{
	"THR": "تهران",
	"IKA": "تهران (امام خمینی)",
	"MHD": "مشهد",
	"SYZ": "شیراز",
	"IFN": "اصفهان",
	"TBZ": "تبریز",
	"KIH": "کیش",
	"AWZ": "اهواز",
	"BND": "بندرعباس",
	"KSH": "کرمانشاه",
	"ZAH": "زاهدان",
	"RAS": "رشت",
	"GSM": "قشم",
	"KER": "کرمان",
	"ABD": "آبادان",
	"BUZ": "بوشهر",
	"OMH": "ارومیه",
	"SRY": "ساری",
	"AZD": "یزد",
	"ADU": "اردبیل",
	"GBT": "گرگان",
	"HDM": "همدان",
	"BDH": "بندر لنگه",
	"ZBR": "چابهار",
	"NSH": "نوشهر",
	"XBJ": "بیرجند",
	"IIL": "ایلام",
	"KHD": "خرم آباد",
	"SDG": "سنندج",
	"LRR": "لار",
	"JWN": "زنجان",
	"RZR": "رامسر",
	"PGU": "عسلویه",
	"AJK": "اراک",
	"CQD": "شهرکرد",
	"YES": "یاسوج",
	"BJB": "بجنورد",
	"DEF": "دزفول",
	"IST": "استانبول",
	"DXB": "دبی",
	"NJF": "نجف",
}

// Name returns the display name for code, or an empty string when the code is unknown.
func Name(code string) string {
	return cityNames[strings.ToUpper(strings.TrimSpace(code))]
}

// Directory adapts Name to an injectable dependency.
type Directory struct{}

func NewDirectory() *Directory {
	return &Directory{}
}

func (d *Directory) CityName(code string) string {
	return Name(code)
}
