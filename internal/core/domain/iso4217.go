package domain

import "time"

// isoEntry is the compact table form of the compiled-in ISO 4217 dataset.
type isoEntry struct {
	code       string
	numeric    string
	name       string
	symbol     string
	intl       string
	alts       []string
	minor      MinorUnit
	tag        string
	introduced *time.Time
	expired    *time.Time
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// iso4217Table lists the active ISO 4217 currencies, the fund codes, the
// metal and test codes, and a few recently withdrawn codes kept with their
// expiry dates. Symbols are the customary ones, shared across currencies
// exactly as they are in the wild ("$", "£", "kr", "¥"); the international
// symbol disambiguates where a customary disambiguation exists. The tag is
// the currency's principal BCP-47 locale, used for localized display only.
var iso4217Table = []isoEntry{
	{code: "AED", numeric: "784", name: "UAE Dirham", symbol: "د.إ", intl: "DH", minor: MinorUnitTwo, tag: "ar-AE"},
	{code: "AFN", numeric: "971", name: "Afghani", symbol: "؋", minor: MinorUnitTwo, tag: "fa-AF"},
	{code: "ALL", numeric: "008", name: "Lek", symbol: "L", intl: "Lek", minor: MinorUnitTwo, tag: "sq-AL"},
	{code: "AMD", numeric: "051", name: "Armenian Dram", symbol: "֏", alts: []string{"դր."}, minor: MinorUnitTwo, tag: "hy-AM"},
	{code: "ANG", numeric: "532", name: "Netherlands Antillean Guilder", symbol: "ƒ", intl: "NAƒ", minor: MinorUnitTwo, tag: "nl-CW"},
	{code: "AOA", numeric: "973", name: "Kwanza", symbol: "Kz", minor: MinorUnitTwo, tag: "pt-AO"},
	{code: "ARS", numeric: "032", name: "Argentine Peso", symbol: "$", intl: "AR$", minor: MinorUnitTwo, tag: "es-AR"},
	{code: "AUD", numeric: "036", name: "Australian Dollar", symbol: "$", intl: "A$", minor: MinorUnitTwo, tag: "en-AU"},
	{code: "AWG", numeric: "533", name: "Aruban Florin", symbol: "ƒ", intl: "Afl", minor: MinorUnitTwo, tag: "nl-AW"},
	{code: "AZN", numeric: "944", name: "Azerbaijan Manat", symbol: "₼", minor: MinorUnitTwo, tag: "az-AZ"},
	{code: "BAM", numeric: "977", name: "Convertible Mark", symbol: "KM", minor: MinorUnitTwo, tag: "bs-BA"},
	{code: "BBD", numeric: "052", name: "Barbados Dollar", symbol: "$", intl: "Bds$", minor: MinorUnitTwo, tag: "en-BB"},
	{code: "BDT", numeric: "050", name: "Taka", symbol: "৳", alts: []string{"Tk"}, minor: MinorUnitTwo, tag: "bn-BD"},
	{code: "BGN", numeric: "975", name: "Bulgarian Lev", symbol: "лв", minor: MinorUnitTwo, tag: "bg-BG"},
	{code: "BHD", numeric: "048", name: "Bahraini Dinar", symbol: "د.ب", intl: "BD", minor: MinorUnitThree, tag: "ar-BH"},
	{code: "BIF", numeric: "108", name: "Burundi Franc", symbol: "FBu", minor: MinorUnitZero, tag: "fr-BI"},
	{code: "BMD", numeric: "060", name: "Bermudian Dollar", symbol: "$", intl: "BD$", minor: MinorUnitTwo, tag: "en-BM"},
	{code: "BND", numeric: "096", name: "Brunei Dollar", symbol: "$", intl: "B$", minor: MinorUnitTwo, tag: "ms-BN"},
	{code: "BOB", numeric: "068", name: "Boliviano", symbol: "Bs", minor: MinorUnitTwo, tag: "es-BO"},
	{code: "BOV", numeric: "984", name: "Mvdol", symbol: GenericCurrencySign, minor: MinorUnitTwo, tag: "es-BO"},
	{code: "BRL", numeric: "986", name: "Brazilian Real", symbol: "R$", minor: MinorUnitTwo, tag: "pt-BR"},
	{code: "BSD", numeric: "044", name: "Bahamian Dollar", symbol: "$", intl: "BS$", minor: MinorUnitTwo, tag: "en-BS"},
	{code: "BTN", numeric: "064", name: "Ngultrum", symbol: "Nu.", minor: MinorUnitTwo, tag: "dz-BT"},
	{code: "BWP", numeric: "072", name: "Pula", symbol: "P", minor: MinorUnitTwo, tag: "en-BW"},
	{code: "BYN", numeric: "933", name: "Belarusian Ruble", symbol: "Br", minor: MinorUnitTwo, tag: "be-BY"},
	{code: "BZD", numeric: "084", name: "Belize Dollar", symbol: "$", intl: "BZ$", minor: MinorUnitTwo, tag: "en-BZ"},
	{code: "CAD", numeric: "124", name: "Canadian Dollar", symbol: "$", intl: "CA$", alts: []string{"C$"}, minor: MinorUnitTwo, tag: "en-CA"},
	{code: "CDF", numeric: "976", name: "Congolese Franc", symbol: "FC", minor: MinorUnitTwo, tag: "fr-CD"},
	{code: "CHE", numeric: "947", name: "WIR Euro", symbol: GenericCurrencySign, minor: MinorUnitTwo, tag: "de-CH"},
	{code: "CHF", numeric: "756", name: "Swiss Franc", symbol: "Fr.", intl: "SFr.", minor: MinorUnitTwo, tag: "de-CH"},
	{code: "CHW", numeric: "948", name: "WIR Franc", symbol: GenericCurrencySign, minor: MinorUnitTwo, tag: "de-CH"},
	{code: "CLF", numeric: "990", name: "Unidad de Fomento", symbol: "UF", minor: MinorUnitFour, tag: "es-CL"},
	{code: "CLP", numeric: "152", name: "Chilean Peso", symbol: "$", intl: "CL$", minor: MinorUnitZero, tag: "es-CL"},
	{code: "CNY", numeric: "156", name: "Yuan Renminbi", symbol: "¥", intl: "CN¥", alts: []string{"元", "RMB"}, minor: MinorUnitTwo, tag: "zh-CN"},
	{code: "COP", numeric: "170", name: "Colombian Peso", symbol: "$", intl: "COL$", minor: MinorUnitTwo, tag: "es-CO"},
	{code: "CRC", numeric: "188", name: "Costa Rican Colon", symbol: "₡", minor: MinorUnitTwo, tag: "es-CR"},
	{code: "CUP", numeric: "192", name: "Cuban Peso", symbol: "$", intl: "$MN", minor: MinorUnitTwo, tag: "es-CU"},
	{code: "CVE", numeric: "132", name: "Cabo Verde Escudo", symbol: "Esc", minor: MinorUnitTwo, tag: "pt-CV"},
	{code: "CZK", numeric: "203", name: "Czech Koruna", symbol: "Kč", minor: MinorUnitTwo, tag: "cs-CZ"},
	{code: "DJF", numeric: "262", name: "Djibouti Franc", symbol: "Fdj", minor: MinorUnitZero, tag: "fr-DJ"},
	{code: "DKK", numeric: "208", name: "Danish Krone", symbol: "kr", intl: "DKr", minor: MinorUnitTwo, tag: "da-DK"},
	{code: "DOP", numeric: "214", name: "Dominican Peso", symbol: "$", intl: "RD$", minor: MinorUnitTwo, tag: "es-DO"},
	{code: "DZD", numeric: "012", name: "Algerian Dinar", symbol: "د.ج", intl: "DA", minor: MinorUnitTwo, tag: "ar-DZ"},
	{code: "EGP", numeric: "818", name: "Egyptian Pound", symbol: "£", intl: "E£", alts: []string{"ج.م"}, minor: MinorUnitTwo, tag: "ar-EG"},
	{code: "ERN", numeric: "232", name: "Nakfa", symbol: "Nfk", minor: MinorUnitTwo, tag: "ti-ER"},
	{code: "ETB", numeric: "230", name: "Ethiopian Birr", symbol: "Br", minor: MinorUnitTwo, tag: "am-ET"},
	{code: "EUR", numeric: "978", name: "Euro", symbol: "€", minor: MinorUnitTwo, tag: "de-DE", introduced: datePtr(1999, time.January, 1)},
	{code: "FJD", numeric: "242", name: "Fiji Dollar", symbol: "$", intl: "FJ$", minor: MinorUnitTwo, tag: "en-FJ"},
	{code: "FKP", numeric: "238", name: "Falkland Islands Pound", symbol: "£", intl: "FK£", minor: MinorUnitTwo, tag: "en-FK"},
	{code: "GBP", numeric: "826", name: "Pound Sterling", symbol: "£", minor: MinorUnitTwo, tag: "en-GB"},
	{code: "GEL", numeric: "981", name: "Lari", symbol: "₾", minor: MinorUnitTwo, tag: "ka-GE"},
	{code: "GHS", numeric: "936", name: "Ghana Cedi", symbol: "₵", intl: "GH₵", minor: MinorUnitTwo, tag: "en-GH"},
	{code: "GIP", numeric: "292", name: "Gibraltar Pound", symbol: "£", intl: "GI£", minor: MinorUnitTwo, tag: "en-GI"},
	{code: "GMD", numeric: "270", name: "Dalasi", symbol: "D", minor: MinorUnitTwo, tag: "en-GM"},
	{code: "GNF", numeric: "324", name: "Guinean Franc", symbol: "FG", minor: MinorUnitZero, tag: "fr-GN"},
	{code: "GTQ", numeric: "320", name: "Quetzal", symbol: "Q", minor: MinorUnitTwo, tag: "es-GT"},
	{code: "GYD", numeric: "328", name: "Guyana Dollar", symbol: "$", intl: "G$", minor: MinorUnitTwo, tag: "en-GY"},
	{code: "HKD", numeric: "344", name: "Hong Kong Dollar", symbol: "$", intl: "HK$", minor: MinorUnitTwo, tag: "zh-HK"},
	{code: "HNL", numeric: "340", name: "Lempira", symbol: "L", minor: MinorUnitTwo, tag: "es-HN"},
	{code: "HTG", numeric: "332", name: "Gourde", symbol: "G", minor: MinorUnitTwo, tag: "fr-HT"},
	{code: "HUF", numeric: "348", name: "Forint", symbol: "Ft", minor: MinorUnitTwo, tag: "hu-HU"},
	{code: "IDR", numeric: "360", name: "Rupiah", symbol: "Rp", minor: MinorUnitTwo, tag: "id-ID"},
	{code: "ILS", numeric: "376", name: "New Israeli Sheqel", symbol: "₪", alts: []string{"NIS"}, minor: MinorUnitTwo, tag: "he-IL"},
	{code: "INR", numeric: "356", name: "Indian Rupee", symbol: "₹", alts: []string{"Rs"}, minor: MinorUnitTwo, tag: "hi-IN"},
	{code: "IQD", numeric: "368", name: "Iraqi Dinar", symbol: "ع.د", intl: "ID", minor: MinorUnitThree, tag: "ar-IQ"},
	{code: "IRR", numeric: "364", name: "Iranian Rial", symbol: "﷼", minor: MinorUnitTwo, tag: "fa-IR"},
	{code: "ISK", numeric: "352", name: "Iceland Krona", symbol: "kr", intl: "IKr", minor: MinorUnitZero, tag: "is-IS"},
	{code: "JMD", numeric: "388", name: "Jamaican Dollar", symbol: "$", intl: "J$", minor: MinorUnitTwo, tag: "en-JM"},
	{code: "JOD", numeric: "400", name: "Jordanian Dinar", symbol: "د.أ", intl: "JD", minor: MinorUnitThree, tag: "ar-JO"},
	{code: "JPY", numeric: "392", name: "Yen", symbol: "¥", intl: "JP¥", alts: []string{"円"}, minor: MinorUnitZero, tag: "ja-JP"},
	{code: "KES", numeric: "404", name: "Kenyan Shilling", symbol: "KSh", minor: MinorUnitTwo, tag: "sw-KE"},
	{code: "KGS", numeric: "417", name: "Som", symbol: "сом", minor: MinorUnitTwo, tag: "ky-KG"},
	{code: "KHR", numeric: "116", name: "Riel", symbol: "៛", minor: MinorUnitTwo, tag: "km-KH"},
	{code: "KMF", numeric: "174", name: "Comorian Franc", symbol: "CF", minor: MinorUnitZero, tag: "fr-KM"},
	{code: "KRW", numeric: "410", name: "Won", symbol: "₩", alts: []string{"원"}, minor: MinorUnitZero, tag: "ko-KR"},
	{code: "KWD", numeric: "414", name: "Kuwaiti Dinar", symbol: "د.ك", intl: "KD", minor: MinorUnitThree, tag: "ar-KW"},
	{code: "KYD", numeric: "136", name: "Cayman Islands Dollar", symbol: "$", intl: "CI$", minor: MinorUnitTwo, tag: "en-KY"},
	{code: "KZT", numeric: "398", name: "Tenge", symbol: "₸", minor: MinorUnitTwo, tag: "kk-KZ"},
	{code: "LAK", numeric: "418", name: "Lao Kip", symbol: "₭", minor: MinorUnitTwo, tag: "lo-LA"},
	{code: "LBP", numeric: "422", name: "Lebanese Pound", symbol: "ل.ل", intl: "L£", minor: MinorUnitTwo, tag: "ar-LB"},
	{code: "LKR", numeric: "144", name: "Sri Lanka Rupee", symbol: "₨", intl: "SLRs", minor: MinorUnitTwo, tag: "si-LK"},
	{code: "LRD", numeric: "430", name: "Liberian Dollar", symbol: "$", intl: "L$", minor: MinorUnitTwo, tag: "en-LR"},
	{code: "LSL", numeric: "426", name: "Loti", symbol: "M", intl: "LSL", minor: MinorUnitTwo, tag: "en-LS"},
	{code: "LYD", numeric: "434", name: "Libyan Dinar", symbol: "ل.د", intl: "LD", minor: MinorUnitThree, tag: "ar-LY"},
	{code: "MAD", numeric: "504", name: "Moroccan Dirham", symbol: "د.م.", intl: "DH", minor: MinorUnitTwo, tag: "ar-MA"},
	{code: "MDL", numeric: "498", name: "Moldovan Leu", symbol: "L", minor: MinorUnitTwo, tag: "ro-MD"},
	{code: "MGA", numeric: "969", name: "Malagasy Ariary", symbol: "Ar", minor: MinorUnitTwo, tag: "mg-MG"},
	{code: "MKD", numeric: "807", name: "Denar", symbol: "ден", minor: MinorUnitTwo, tag: "mk-MK"},
	{code: "MMK", numeric: "104", name: "Kyat", symbol: "K", minor: MinorUnitTwo, tag: "my-MM"},
	{code: "MNT", numeric: "496", name: "Tugrik", symbol: "₮", minor: MinorUnitTwo, tag: "mn-MN"},
	{code: "MOP", numeric: "446", name: "Pataca", symbol: "MOP$", minor: MinorUnitTwo, tag: "zh-MO"},
	{code: "MRU", numeric: "929", name: "Ouguiya", symbol: "UM", minor: MinorUnitTwo, tag: "ar-MR", introduced: datePtr(2018, time.January, 1)},
	{code: "MUR", numeric: "480", name: "Mauritius Rupee", symbol: "₨", intl: "MURs", minor: MinorUnitTwo, tag: "en-MU"},
	{code: "MVR", numeric: "462", name: "Rufiyaa", symbol: "Rf", minor: MinorUnitTwo, tag: "dv-MV"},
	{code: "MWK", numeric: "454", name: "Malawi Kwacha", symbol: "MK", minor: MinorUnitTwo, tag: "en-MW"},
	{code: "MXN", numeric: "484", name: "Mexican Peso", symbol: "$", intl: "Mex$", minor: MinorUnitTwo, tag: "es-MX"},
	{code: "MXV", numeric: "979", name: "Mexican Unidad de Inversion (UDI)", symbol: GenericCurrencySign, minor: MinorUnitTwo, tag: "es-MX"},
	{code: "MYR", numeric: "458", name: "Malaysian Ringgit", symbol: "RM", minor: MinorUnitTwo, tag: "ms-MY"},
	{code: "MZN", numeric: "943", name: "Mozambique Metical", symbol: "MT", minor: MinorUnitTwo, tag: "pt-MZ"},
	{code: "NAD", numeric: "516", name: "Namibia Dollar", symbol: "$", intl: "N$", minor: MinorUnitTwo, tag: "en-NA"},
	{code: "NGN", numeric: "566", name: "Naira", symbol: "₦", minor: MinorUnitTwo, tag: "en-NG"},
	{code: "NIO", numeric: "558", name: "Cordoba Oro", symbol: "C$", minor: MinorUnitTwo, tag: "es-NI"},
	{code: "NOK", numeric: "578", name: "Norwegian Krone", symbol: "kr", intl: "NKr", minor: MinorUnitTwo, tag: "nb-NO"},
	{code: "NPR", numeric: "524", name: "Nepalese Rupee", symbol: "₨", intl: "NPRs", minor: MinorUnitTwo, tag: "ne-NP"},
	{code: "NZD", numeric: "554", name: "New Zealand Dollar", symbol: "$", intl: "NZ$", minor: MinorUnitTwo, tag: "en-NZ"},
	{code: "OMR", numeric: "512", name: "Rial Omani", symbol: "ر.ع.", intl: "RO", minor: MinorUnitThree, tag: "ar-OM"},
	{code: "PAB", numeric: "590", name: "Balboa", symbol: "B/.", minor: MinorUnitTwo, tag: "es-PA"},
	{code: "PEN", numeric: "604", name: "Sol", symbol: "S/", minor: MinorUnitTwo, tag: "es-PE"},
	{code: "PGK", numeric: "598", name: "Kina", symbol: "K", minor: MinorUnitTwo, tag: "en-PG"},
	{code: "PHP", numeric: "608", name: "Philippine Peso", symbol: "₱", minor: MinorUnitTwo, tag: "en-PH"},
	{code: "PKR", numeric: "586", name: "Pakistan Rupee", symbol: "₨", intl: "PKRs", minor: MinorUnitTwo, tag: "ur-PK"},
	{code: "PLN", numeric: "985", name: "Zloty", symbol: "zł", minor: MinorUnitTwo, tag: "pl-PL"},
	{code: "PYG", numeric: "600", name: "Guarani", symbol: "₲", minor: MinorUnitZero, tag: "es-PY"},
	{code: "QAR", numeric: "634", name: "Qatari Rial", symbol: "ر.ق", intl: "QR", minor: MinorUnitTwo, tag: "ar-QA"},
	{code: "RON", numeric: "946", name: "Romanian Leu", symbol: "lei", minor: MinorUnitTwo, tag: "ro-RO"},
	{code: "RSD", numeric: "941", name: "Serbian Dinar", symbol: "дин.", alts: []string{"din."}, minor: MinorUnitTwo, tag: "sr-RS"},
	{code: "RUB", numeric: "643", name: "Russian Ruble", symbol: "₽", alts: []string{"руб."}, minor: MinorUnitTwo, tag: "ru-RU"},
	{code: "RWF", numeric: "646", name: "Rwanda Franc", symbol: "RF", minor: MinorUnitZero, tag: "rw-RW"},
	{code: "SAR", numeric: "682", name: "Saudi Riyal", symbol: "ر.س", intl: "SR", minor: MinorUnitTwo, tag: "ar-SA"},
	{code: "SBD", numeric: "090", name: "Solomon Islands Dollar", symbol: "$", intl: "SI$", minor: MinorUnitTwo, tag: "en-SB"},
	{code: "SCR", numeric: "690", name: "Seychelles Rupee", symbol: "₨", intl: "SRe", minor: MinorUnitTwo, tag: "en-SC"},
	{code: "SDG", numeric: "938", name: "Sudanese Pound", symbol: "ج.س.", minor: MinorUnitTwo, tag: "ar-SD"},
	{code: "SEK", numeric: "752", name: "Swedish Krona", symbol: "kr", intl: "SKr", minor: MinorUnitTwo, tag: "sv-SE"},
	{code: "SGD", numeric: "702", name: "Singapore Dollar", symbol: "$", intl: "S$", minor: MinorUnitTwo, tag: "en-SG"},
	{code: "SHP", numeric: "654", name: "Saint Helena Pound", symbol: "£", intl: "SH£", minor: MinorUnitTwo, tag: "en-SH"},
	{code: "SLE", numeric: "925", name: "Leone", symbol: "Le", minor: MinorUnitTwo, tag: "en-SL", introduced: datePtr(2022, time.April, 1)},
	{code: "SOS", numeric: "706", name: "Somali Shilling", symbol: "Sh.So.", minor: MinorUnitTwo, tag: "so-SO"},
	{code: "SRD", numeric: "968", name: "Surinam Dollar", symbol: "$", intl: "SR$", minor: MinorUnitTwo, tag: "nl-SR"},
	{code: "SSP", numeric: "728", name: "South Sudanese Pound", symbol: "£", intl: "SS£", minor: MinorUnitTwo, tag: "en-SS"},
	{code: "STN", numeric: "930", name: "Dobra", symbol: "Db", minor: MinorUnitTwo, tag: "pt-ST", introduced: datePtr(2018, time.January, 1)},
	{code: "SVC", numeric: "222", name: "El Salvador Colon", symbol: "₡", intl: "SV₡", minor: MinorUnitTwo, tag: "es-SV"},
	{code: "SYP", numeric: "760", name: "Syrian Pound", symbol: "£", intl: "S£", alts: []string{"ل.س"}, minor: MinorUnitTwo, tag: "ar-SY"},
	{code: "SZL", numeric: "748", name: "Lilangeni", symbol: "E", minor: MinorUnitTwo, tag: "en-SZ"},
	{code: "THB", numeric: "764", name: "Baht", symbol: "฿", minor: MinorUnitTwo, tag: "th-TH"},
	{code: "TJS", numeric: "972", name: "Somoni", symbol: "SM", minor: MinorUnitTwo, tag: "tg-TJ"},
	{code: "TMT", numeric: "934", name: "Turkmenistan New Manat", symbol: "m", intl: "TMT", minor: MinorUnitTwo, tag: "tk-TM"},
	{code: "TND", numeric: "788", name: "Tunisian Dinar", symbol: "د.ت", intl: "DT", minor: MinorUnitThree, tag: "ar-TN"},
	{code: "TOP", numeric: "776", name: "Pa'anga", symbol: "T$", minor: MinorUnitTwo, tag: "to-TO"},
	{code: "TRY", numeric: "949", name: "Turkish Lira", symbol: "₺", alts: []string{"TL"}, minor: MinorUnitTwo, tag: "tr-TR"},
	{code: "TTD", numeric: "780", name: "Trinidad and Tobago Dollar", symbol: "$", intl: "TT$", minor: MinorUnitTwo, tag: "en-TT"},
	{code: "TWD", numeric: "901", name: "New Taiwan Dollar", symbol: "$", intl: "NT$", minor: MinorUnitTwo, tag: "zh-TW"},
	{code: "TZS", numeric: "834", name: "Tanzanian Shilling", symbol: "TSh", minor: MinorUnitTwo, tag: "sw-TZ"},
	{code: "UAH", numeric: "980", name: "Hryvnia", symbol: "₴", alts: []string{"грн"}, minor: MinorUnitTwo, tag: "uk-UA"},
	{code: "UGX", numeric: "800", name: "Uganda Shilling", symbol: "USh", minor: MinorUnitZero, tag: "en-UG"},
	{code: "USD", numeric: "840", name: "US Dollar", symbol: "$", intl: "US$", minor: MinorUnitTwo, tag: "en-US"},
	{code: "USN", numeric: "997", name: "US Dollar (Next day)", symbol: GenericCurrencySign, minor: MinorUnitTwo, tag: "en-US"},
	{code: "UYI", numeric: "940", name: "Uruguay Peso en Unidades Indexadas (UI)", symbol: GenericCurrencySign, minor: MinorUnitZero, tag: "es-UY"},
	{code: "UYU", numeric: "858", name: "Peso Uruguayo", symbol: "$", intl: "$U", minor: MinorUnitTwo, tag: "es-UY"},
	{code: "UYW", numeric: "927", name: "Unidad Previsional", symbol: GenericCurrencySign, minor: MinorUnitFour, tag: "es-UY", introduced: datePtr(2018, time.August, 29)},
	{code: "UZS", numeric: "860", name: "Uzbekistan Sum", symbol: "сўм", minor: MinorUnitTwo, tag: "uz-UZ"},
	{code: "VES", numeric: "928", name: "Bolivar Soberano", symbol: "Bs.S", minor: MinorUnitTwo, tag: "es-VE", introduced: datePtr(2018, time.August, 20)},
	{code: "VND", numeric: "704", name: "Dong", symbol: "₫", minor: MinorUnitZero, tag: "vi-VN"},
	{code: "VUV", numeric: "548", name: "Vatu", symbol: "VT", minor: MinorUnitZero, tag: "en-VU"},
	{code: "WST", numeric: "882", name: "Tala", symbol: "WS$", minor: MinorUnitTwo, tag: "en-WS"},
	{code: "XAF", numeric: "950", name: "CFA Franc BEAC", symbol: "FCFA", minor: MinorUnitZero, tag: "fr-CM"},
	{code: "XAG", numeric: "961", name: "Silver", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "XAU", numeric: "959", name: "Gold", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "XCD", numeric: "951", name: "East Caribbean Dollar", symbol: "$", intl: "EC$", minor: MinorUnitTwo, tag: "en-AG"},
	{code: "XDR", numeric: "960", name: "SDR (Special Drawing Right)", symbol: GenericCurrencySign, alts: []string{"SDR"}, minor: MinorUnitNone},
	{code: "XOF", numeric: "952", name: "CFA Franc BCEAO", symbol: "CFA", minor: MinorUnitZero, tag: "fr-SN"},
	{code: "XPD", numeric: "964", name: "Palladium", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "XPF", numeric: "953", name: "CFP Franc", symbol: "F", intl: "CFPF", minor: MinorUnitZero, tag: "fr-PF"},
	{code: "XPT", numeric: "962", name: "Platinum", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "XSU", numeric: "994", name: "Sucre", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "XTS", numeric: "963", name: "Codes specifically reserved for testing purposes", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "XUA", numeric: "965", name: "ADB Unit of Account", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "XXX", numeric: "999", name: "No currency", symbol: GenericCurrencySign, minor: MinorUnitNone},
	{code: "YER", numeric: "886", name: "Yemeni Rial", symbol: "﷼", intl: "YR", minor: MinorUnitTwo, tag: "ar-YE"},
	{code: "ZAR", numeric: "710", name: "Rand", symbol: "R", minor: MinorUnitTwo, tag: "en-ZA"},
	{code: "ZMW", numeric: "967", name: "Zambian Kwacha", symbol: "ZK", minor: MinorUnitTwo, tag: "en-ZM"},
	{code: "ZWL", numeric: "932", name: "Zimbabwe Dollar", symbol: "$", intl: "Z$", minor: MinorUnitTwo, tag: "en-ZW"},

	// Withdrawn codes kept so expiry semantics run against real data.
	{code: "HRK", numeric: "191", name: "Kuna", symbol: "kn", minor: MinorUnitTwo, tag: "hr-HR", expired: datePtr(2023, time.January, 1)},
	{code: "MRO", numeric: "478", name: "Ouguiya (pre-2018)", symbol: "UM", minor: MinorUnitTwo, tag: "ar-MR", expired: datePtr(2018, time.January, 1)},
	{code: "STD", numeric: "678", name: "Dobra (pre-2018)", symbol: "Db", minor: MinorUnitTwo, tag: "pt-ST", expired: datePtr(2018, time.January, 1)},
	{code: "VEF", numeric: "937", name: "Bolivar Fuerte", symbol: "Bs.F", minor: MinorUnitTwo, tag: "es-VE", expired: datePtr(2018, time.August, 20)},
}

// ISO4217Currencies materializes the compiled-in dataset. Each call returns
// fresh values; callers may hold and mutate them freely.
func ISO4217Currencies() []CurrencyInfo {
	out := make([]CurrencyInfo, 0, len(iso4217Table))
	for _, e := range iso4217Table {
		intl := e.intl
		if intl == "" {
			intl = e.symbol
		}
		info := CurrencyInfo{
			Code:                e.code,
			NumericCode:         e.numeric,
			Name:                e.name,
			Symbol:              e.symbol,
			InternationalSymbol: intl,
			AlternativeSymbols:  append([]string(nil), e.alts...),
			MinorUnit:           e.minor,
			IsISO:               true,
			ReferenceTag:        e.tag,
			IntroducedOn:        e.introduced,
			ExpiredOn:           e.expired,
		}
		out = append(out, info)
	}
	return out
}
