package iban

// builtinSpecs lists every country that issues IBANs. Bank and branch spans
// index the BBAN, the account span indexes the full IBAN. Countries absent
// from the SWIFT IBAN registry (registry: false) publish their formats
// nationally.
var builtinSpecs = map[string]countryEntry{
	"AD": {chars: 24, bban: `^[0-9]{8}[A-Z0-9]{12}$`, bank: Span(0, 3), branch: Span(4, 7), account: Span(12, 23), registry: true, sepa: true},
	"AE": {chars: 23, bban: `^[0-9]{3}[0-9]{16}$`, bank: Span(0, 2), account: Span(7, 22), registry: true},
	"AL": {chars: 28, bban: `^[0-9]{8}[A-Z0-9]{16}$`, bank: Span(0, 2), branch: Span(3, 7), account: Span(12, 27), registry: true},
	"AO": {chars: 25, bban: `^[0-9]{21}$`},
	"AT": {chars: 20, bban: `^[0-9]{16}$`, bank: Span(0, 4), account: Span(9, 19), registry: true, sepa: true},
	"AX": {chars: 18, bban: `^[0-9]{14}$`, bank: Span(0, 2), account: Span(7, 17), registry: true, sepa: true},
	"AZ": {chars: 28, bban: `^[A-Z]{4}[A-Z0-9]{20}$`, bank: Span(0, 3), account: Span(8, 27), registry: true},
	"BA": {chars: 20, bban: `^[0-9]{16}$`, algorithm: AlgorithmMod9710, bank: Span(0, 2), branch: Span(3, 5), account: Span(10, 17), registry: true},
	"BE": {chars: 16, bban: `^[0-9]{12}$`, algorithm: AlgorithmBelgium, bank: Span(0, 2), account: Span(4, 15), registry: true, sepa: true},
	"BF": {chars: 28, bban: `^[A-Z0-9]{2}[0-9]{22}$`},
	"BG": {chars: 22, bban: `^[A-Z]{4}[0-9]{6}[A-Z0-9]{8}$`, bank: Span(0, 3), branch: Span(4, 7), account: Span(14, 21), registry: true, sepa: true},
	"BH": {chars: 22, bban: `^[A-Z]{4}[A-Z0-9]{14}$`, bank: Span(0, 3), account: Span(8, 21), registry: true},
	"BI": {chars: 27, bban: `^[0-9]{23}$`, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true},
	"BJ": {chars: 28, bban: `^[A-Z0-9]{2}[0-9]{22}$`},
	"BL": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"BR": {chars: 29, bban: `^[0-9]{23}[A-Z]{1}[A-Z0-9]{1}$`, bank: Span(0, 7), branch: Span(8, 12), account: Span(17, 28), registry: true},
	"BY": {chars: 28, bban: `^[A-Z]{4}[0-9]{4}[A-Z0-9]{16}$`, bank: Span(0, 3), account: Span(12, 27), registry: true},
	"CF": {chars: 27, bban: `^[0-9]{23}$`},
	"CG": {chars: 27, bban: `^[0-9]{23}$`},
	"CH": {chars: 21, bban: `^[0-9]{5}[A-Z0-9]{12}$`, bank: Span(0, 4), account: Span(9, 20), registry: true, sepa: true},
	"CI": {chars: 28, bban: `^[A-Z]{1}[0-9]{23}$`},
	"CM": {chars: 27, bban: `^[0-9]{23}$`},
	"CR": {chars: 22, bban: `^[0-9]{18}$`, bank: Span(0, 3), account: Span(8, 21), registry: true},
	"CV": {chars: 25, bban: `^[0-9]{21}$`},
	"CY": {chars: 28, bban: `^[0-9]{8}[A-Z0-9]{16}$`, bank: Span(0, 2), branch: Span(3, 7), account: Span(12, 27), registry: true, sepa: true},
	"CZ": {chars: 24, bban: `^[0-9]{20}$`, algorithm: AlgorithmCzechSlovak, bank: Span(0, 3), account: Span(8, 23), registry: true, sepa: true},
	"DE": {chars: 22, bban: `^[0-9]{18}$`, bank: Span(0, 7), account: Span(12, 21), registry: true, sepa: true},
	"DJ": {chars: 27, bban: `^[0-9]{23}$`, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true},
	"DK": {chars: 18, bban: `^[0-9]{14}$`, bank: Span(0, 3), account: Span(8, 17), registry: true, sepa: true},
	"DO": {chars: 28, bban: `^[A-Z]{4}[0-9]{20}$`, bank: Span(0, 3), account: Span(8, 27), registry: true},
	"DZ": {chars: 26, bban: `^[0-9]{22}$`},
	"EE": {chars: 20, bban: `^[0-9]{16}$`, algorithm: AlgorithmEstonia, bank: Span(0, 1), account: Span(8, 19), registry: true, sepa: true},
	"EG": {chars: 29, bban: `^[0-9]{25}$`, bank: Span(0, 3), branch: Span(4, 7), account: Span(12, 28), registry: true},
	"ES": {chars: 24, bban: `^[0-9]{20}$`, algorithm: AlgorithmSpain, bank: Span(0, 3), branch: Span(4, 7), account: Span(14, 23), registry: true, sepa: true},
	"FI": {chars: 18, bban: `^[0-9]{14}$`, bank: Span(0, 2), account: Span(7, 17), registry: true, sepa: true},
	"FK": {chars: 18, bban: `^[A-Z]{2}[0-9]{12}$`, bank: Span(0, 1), account: Span(6, 17), registry: true},
	"FO": {chars: 18, bban: `^[0-9]{14}$`, bank: Span(0, 3), account: Span(8, 17), registry: true},
	"FR": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"GA": {chars: 27, bban: `^[0-9]{23}$`},
	"GB": {chars: 22, bban: `^[A-Z]{4}[0-9]{14}$`, bank: Span(0, 3), branch: Span(4, 9), account: Span(14, 21), registry: true, sepa: true},
	"GE": {chars: 22, bban: `^[A-Z0-9]{2}[0-9]{16}$`, bank: Span(0, 1), account: Span(6, 21), registry: true},
	"GF": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"GG": {chars: 22, bban: `^[A-Z]{4}[0-9]{14}$`, bank: Span(0, 3), branch: Span(4, 9), account: Span(14, 21), registry: true, sepa: true},
	"GI": {chars: 23, bban: `^[A-Z]{4}[A-Z0-9]{15}$`, bank: Span(0, 3), account: Span(8, 22), registry: true, sepa: true},
	"GL": {chars: 18, bban: `^[0-9]{14}$`, bank: Span(0, 3), account: Span(8, 17), registry: true},
	"GP": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"GQ": {chars: 27, bban: `^[0-9]{23}$`},
	"GR": {chars: 27, bban: `^[0-9]{7}[A-Z0-9]{16}$`, bank: Span(0, 2), branch: Span(3, 6), account: Span(11, 26), registry: true, sepa: true},
	"GT": {chars: 28, bban: `^[A-Z0-9]{24}$`, bank: Span(0, 3), account: Span(8, 27), registry: true},
	"GW": {chars: 25, bban: `^[A-Z]{2}[0-9]{19}$`},
	"HN": {chars: 28, bban: `^[A-Z]{4}[0-9]{20}$`, bank: Span(0, 3), account: Span(8, 27), registry: true},
	"HR": {chars: 21, bban: `^[0-9]{17}$`, algorithm: AlgorithmCroatia, bank: Span(0, 6), account: Span(11, 20), registry: true, sepa: true},
	"HU": {chars: 28, bban: `^[0-9]{24}$`, algorithm: AlgorithmHungary, bank: Span(0, 2), branch: Span(3, 6), account: Span(11, 27), registry: true, sepa: true},
	"IE": {chars: 22, bban: `^[A-Z0-9]{4}[0-9]{14}$`, bank: Span(0, 3), branch: Span(4, 9), account: Span(14, 21), registry: true, sepa: true},
	"IL": {chars: 23, bban: `^[0-9]{19}$`, bank: Span(0, 2), branch: Span(3, 5), account: Span(10, 22), registry: true},
	"IM": {chars: 22, bban: `^[A-Z]{4}[0-9]{14}$`, bank: Span(0, 3), branch: Span(4, 9), account: Span(14, 21), registry: true, sepa: true},
	"IQ": {chars: 23, bban: `^[A-Z]{4}[0-9]{15}$`, bank: Span(0, 3), branch: Span(4, 6), account: Span(11, 22), registry: true},
	"IR": {chars: 26, bban: `^[0-9]{22}$`},
	"IS": {chars: 26, bban: `^[0-9]{22}$`, bank: Span(0, 1), branch: Span(2, 3), account: Span(10, 25), registry: true, sepa: true},
	"IT": {chars: 27, bban: `^[A-Z]{1}[0-9]{10}[A-Z0-9]{12}$`, bank: Span(1, 5), branch: Span(6, 10), account: Span(15, 26), registry: true, sepa: true},
	"JE": {chars: 22, bban: `^[A-Z]{4}[0-9]{14}$`, bank: Span(0, 3), branch: Span(4, 9), account: Span(14, 21), registry: true, sepa: true},
	"JO": {chars: 30, bban: `^[A-Z]{4}[0-9]{4}[A-Z0-9]{18}$`, bank: Span(0, 3), branch: Span(4, 7), account: Span(12, 29), registry: true},
	"KM": {chars: 27, bban: `^[0-9]{23}$`},
	"KW": {chars: 30, bban: `^[A-Z]{4}[A-Z0-9]{22}$`, bank: Span(0, 3), account: Span(8, 29), registry: true},
	"KZ": {chars: 20, bban: `^[0-9]{3}[A-Z0-9]{13}$`, bank: Span(0, 2), account: Span(7, 19), registry: true},
	"LB": {chars: 28, bban: `^[0-9]{4}[A-Z0-9]{20}$`, bank: Span(0, 3), account: Span(8, 27), registry: true},
	"LC": {chars: 32, bban: `^[A-Z]{4}[A-Z0-9]{24}$`, bank: Span(0, 3), account: Span(8, 31), registry: true},
	"LI": {chars: 21, bban: `^[0-9]{5}[A-Z0-9]{12}$`, bank: Span(0, 4), account: Span(9, 20), registry: true, sepa: true},
	"LT": {chars: 20, bban: `^[0-9]{16}$`, bank: Span(0, 4), account: Span(9, 19), registry: true, sepa: true},
	"LU": {chars: 20, bban: `^[0-9]{3}[A-Z0-9]{13}$`, bank: Span(0, 2), account: Span(7, 19), registry: true, sepa: true},
	"LV": {chars: 21, bban: `^[A-Z]{4}[A-Z0-9]{13}$`, bank: Span(0, 3), account: Span(8, 20), registry: true, sepa: true},
	"LY": {chars: 25, bban: `^[0-9]{21}$`, bank: Span(0, 2), branch: Span(3, 5), account: Span(10, 24), registry: true},
	"MA": {chars: 28, bban: `^[0-9]{24}$`},
	"MC": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"MD": {chars: 24, bban: `^[A-Z0-9]{2}[A-Z0-9]{18}$`, bank: Span(0, 1), account: Span(6, 23), registry: true, sepa: true},
	"ME": {chars: 22, bban: `^[0-9]{18}$`, algorithm: AlgorithmMod9710, bank: Span(0, 2), account: Span(7, 19), registry: true},
	"MF": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"MG": {chars: 27, bban: `^[0-9]{23}$`},
	"MK": {chars: 19, bban: `^[0-9]{3}[A-Z0-9]{10}[0-9]{2}$`, algorithm: AlgorithmMod9710, bank: Span(0, 2), account: Span(7, 16), registry: true, sepa: true},
	"ML": {chars: 28, bban: `^[A-Z0-9]{2}[0-9]{22}$`},
	"MN": {chars: 20, bban: `^[0-9]{16}$`, bank: Span(0, 3), account: Span(8, 19), registry: true},
	"MQ": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"MR": {chars: 27, bban: `^[0-9]{23}$`, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true},
	"MT": {chars: 31, bban: `^[A-Z]{4}[0-9]{5}[A-Z0-9]{18}$`, bank: Span(0, 3), branch: Span(4, 8), account: Span(13, 30), registry: true, sepa: true},
	"MU": {chars: 30, bban: `^[A-Z]{4}[0-9]{19}[A-Z]{3}$`, bank: Span(0, 5), branch: Span(6, 7), account: Span(12, 26), registry: true},
	"MZ": {chars: 25, bban: `^[0-9]{21}$`},
	"NC": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true},
	"NE": {chars: 28, bban: `^[A-Z]{2}[0-9]{22}$`},
	"NI": {chars: 28, bban: `^[A-Z]{4}[0-9]{20}$`, bank: Span(0, 3), account: Span(8, 27), registry: true},
	"NL": {chars: 18, bban: `^[A-Z]{4}[0-9]{10}$`, bank: Span(0, 3), account: Span(8, 17), registry: true, sepa: true},
	"NO": {chars: 15, bban: `^[0-9]{11}$`, algorithm: AlgorithmNorway, bank: Span(0, 3), account: Span(8, 13), registry: true, sepa: true},
	"OM": {chars: 23, bban: `^[0-9]{3}[A-Z0-9]{16}$`, bank: Span(0, 2), account: Span(7, 22), registry: true},
	"PF": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true},
	"PK": {chars: 24, bban: `^[A-Z0-9]{4}[0-9]{16}$`, bank: Span(0, 3), account: Span(8, 23), registry: true},
	"PL": {chars: 28, bban: `^[0-9]{24}$`, algorithm: AlgorithmPoland, bank: Span(0, 2), branch: Span(3, 6), account: Span(12, 27), registry: true, sepa: true},
	"PM": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"PS": {chars: 29, bban: `^[A-Z0-9]{4}[0-9]{21}$`, bank: Span(0, 3), account: Span(8, 28), registry: true},
	"PT": {chars: 25, bban: `^[0-9]{21}$`, algorithm: AlgorithmMod9710, bank: Span(0, 3), branch: Span(4, 7), account: Span(12, 22), registry: true, sepa: true},
	"QA": {chars: 29, bban: `^[A-Z]{4}[A-Z0-9]{21}$`, bank: Span(0, 3), account: Span(8, 28), registry: true},
	"RE": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
	"RO": {chars: 24, bban: `^[A-Z]{4}[A-Z0-9]{16}$`, bank: Span(0, 3), account: Span(8, 23), registry: true, sepa: true},
	"RS": {chars: 22, bban: `^[0-9]{18}$`, algorithm: AlgorithmMod9710, bank: Span(0, 2), account: Span(7, 19), registry: true},
	"RU": {chars: 33, bban: `^[0-9]{14}[A-Z0-9]{15}$`, bank: Span(0, 8), branch: Span(9, 13), account: Span(18, 32), registry: true},
	"SA": {chars: 24, bban: `^[0-9]{2}[A-Z0-9]{18}$`, bank: Span(0, 1), account: Span(6, 23), registry: true},
	"SC": {chars: 31, bban: `^[A-Z]{4}[0-9]{20}[A-Z]{3}$`, bank: Span(0, 5), branch: Span(6, 7), account: Span(12, 30), registry: true},
	"SD": {chars: 18, bban: `^[0-9]{14}$`, bank: Span(0, 1), account: Span(6, 17), registry: true},
	"SE": {chars: 24, bban: `^[0-9]{20}$`, bank: Span(0, 2), account: Span(7, 23), registry: true, sepa: true},
	"SI": {chars: 19, bban: `^[0-9]{15}$`, algorithm: AlgorithmMod9710, bank: Span(0, 1), branch: Span(2, 4), account: Span(9, 16), registry: true, sepa: true},
	"SK": {chars: 24, bban: `^[0-9]{20}$`, algorithm: AlgorithmCzechSlovak, bank: Span(0, 3), account: Span(8, 23), registry: true, sepa: true},
	"SM": {chars: 27, bban: `^[A-Z]{1}[0-9]{10}[A-Z0-9]{12}$`, bank: Span(1, 5), branch: Span(6, 10), account: Span(15, 26), registry: true, sepa: true},
	"SN": {chars: 28, bban: `^[A-Z]{2}[0-9]{22}$`},
	"SO": {chars: 23, bban: `^[0-9]{19}$`, bank: Span(0, 3), branch: Span(4, 6), account: Span(11, 22), registry: true},
	"ST": {chars: 25, bban: `^[0-9]{21}$`, bank: Span(0, 3), branch: Span(4, 7), account: Span(12, 24), registry: true},
	"SV": {chars: 28, bban: `^[A-Z]{4}[0-9]{20}$`, bank: Span(0, 3), account: Span(8, 27), registry: true},
	"TD": {chars: 27, bban: `^[0-9]{23}$`},
	"TF": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true},
	"TG": {chars: 28, bban: `^[A-Z]{2}[0-9]{22}$`},
	"TL": {chars: 23, bban: `^[0-9]{19}$`, algorithm: AlgorithmMod9710, bank: Span(0, 2), account: Span(7, 20), registry: true},
	"TN": {chars: 24, bban: `^[0-9]{20}$`, bank: Span(0, 1), branch: Span(2, 4), account: Span(9, 21), registry: true},
	"TR": {chars: 26, bban: `^[0-9]{5}[A-Z0-9]{17}$`, bank: Span(0, 4), account: Span(10, 25), registry: true},
	"UA": {chars: 29, bban: `^[0-9]{6}[A-Z0-9]{19}$`, bank: Span(0, 5), account: Span(10, 28), registry: true},
	"VA": {chars: 22, bban: `^[0-9]{18}$`, bank: Span(0, 2), account: Span(7, 21), registry: true, sepa: true},
	"VG": {chars: 24, bban: `^[A-Z0-9]{4}[0-9]{16}$`, bank: Span(0, 3), account: Span(8, 23), registry: true},
	"WF": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true},
	"XK": {chars: 20, bban: `^[0-9]{16}$`, bank: Span(0, 1), branch: Span(2, 3), account: Span(8, 17), registry: true},
	"YE": {chars: 30, bban: `^[A-Z]{4}[0-9]{4}[A-Z0-9]{18}$`, bank: Span(0, 3), branch: Span(4, 7), account: Span(12, 29), registry: true},
	"YT": {chars: 27, bban: `^[0-9]{10}[A-Z0-9]{11}[0-9]{2}$`, algorithm: AlgorithmFrance, bank: Span(0, 4), branch: Span(5, 9), account: Span(14, 24), registry: true, sepa: true},
}

// countryNames holds the ISO 3166-1 short name of every assigned alpha-2
// code plus XK, which SWIFT uses for Kosovo.
var countryNames = map[string]string{
	"AD": "Andorra",
	"AE": "United Arab Emirates",
	"AF": "Afghanistan",
	"AG": "Antigua and Barbuda",
	"AI": "Anguilla",
	"AL": "Albania",
	"AM": "Armenia",
	"AO": "Angola",
	"AQ": "Antarctica",
	"AR": "Argentina",
	"AS": "American Samoa",
	"AT": "Austria",
	"AU": "Australia",
	"AW": "Aruba",
	"AX": "Åland Islands",
	"AZ": "Azerbaijan",
	"BA": "Bosnia and Herzegovina",
	"BB": "Barbados",
	"BD": "Bangladesh",
	"BE": "Belgium",
	"BF": "Burkina Faso",
	"BG": "Bulgaria",
	"BH": "Bahrain",
	"BI": "Burundi",
	"BJ": "Benin",
	"BL": "Saint Barthélemy",
	"BM": "Bermuda",
	"BN": "Brunei Darussalam",
	"BO": "Bolivia",
	"BQ": "Bonaire, Sint Eustatius and Saba",
	"BR": "Brazil",
	"BS": "Bahamas",
	"BT": "Bhutan",
	"BV": "Bouvet Island",
	"BW": "Botswana",
	"BY": "Belarus",
	"BZ": "Belize",
	"CA": "Canada",
	"CC": "Cocos (Keeling) Islands",
	"CD": "Congo, The Democratic Republic of the",
	"CF": "Central African Republic",
	"CG": "Congo",
	"CH": "Switzerland",
	"CI": "Côte d'Ivoire",
	"CK": "Cook Islands",
	"CL": "Chile",
	"CM": "Cameroon",
	"CN": "China",
	"CO": "Colombia",
	"CR": "Costa Rica",
	"CU": "Cuba",
	"CV": "Cabo Verde",
	"CW": "Curaçao",
	"CX": "Christmas Island",
	"CY": "Cyprus",
	"CZ": "Czechia",
	"DE": "Germany",
	"DJ": "Djibouti",
	"DK": "Denmark",
	"DM": "Dominica",
	"DO": "Dominican Republic",
	"DZ": "Algeria",
	"EC": "Ecuador",
	"EE": "Estonia",
	"EG": "Egypt",
	"EH": "Western Sahara",
	"ER": "Eritrea",
	"ES": "Spain",
	"ET": "Ethiopia",
	"FI": "Finland",
	"FJ": "Fiji",
	"FK": "Falkland Islands (Malvinas)",
	"FM": "Micronesia, Federated States of",
	"FO": "Faroe Islands",
	"FR": "France",
	"GA": "Gabon",
	"GB": "United Kingdom",
	"GD": "Grenada",
	"GE": "Georgia",
	"GF": "French Guiana",
	"GG": "Guernsey",
	"GH": "Ghana",
	"GI": "Gibraltar",
	"GL": "Greenland",
	"GM": "Gambia",
	"GN": "Guinea",
	"GP": "Guadeloupe",
	"GQ": "Equatorial Guinea",
	"GR": "Greece",
	"GS": "South Georgia and the South Sandwich Islands",
	"GT": "Guatemala",
	"GU": "Guam",
	"GW": "Guinea-Bissau",
	"GY": "Guyana",
	"HK": "Hong Kong",
	"HM": "Heard Island and McDonald Islands",
	"HN": "Honduras",
	"HR": "Croatia",
	"HT": "Haiti",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IE": "Ireland",
	"IL": "Israel",
	"IM": "Isle of Man",
	"IN": "India",
	"IO": "British Indian Ocean Territory",
	"IQ": "Iraq",
	"IR": "Iran",
	"IS": "Iceland",
	"IT": "Italy",
	"JE": "Jersey",
	"JM": "Jamaica",
	"JO": "Jordan",
	"JP": "Japan",
	"KE": "Kenya",
	"KG": "Kyrgyzstan",
	"KH": "Cambodia",
	"KI": "Kiribati",
	"KM": "Comoros",
	"KN": "Saint Kitts and Nevis",
	"KP": "North Korea",
	"KR": "South Korea",
	"KW": "Kuwait",
	"KY": "Cayman Islands",
	"KZ": "Kazakhstan",
	"LA": "Laos",
	"LB": "Lebanon",
	"LC": "Saint Lucia",
	"LI": "Liechtenstein",
	"LK": "Sri Lanka",
	"LR": "Liberia",
	"LS": "Lesotho",
	"LT": "Lithuania",
	"LU": "Luxembourg",
	"LV": "Latvia",
	"LY": "Libya",
	"MA": "Morocco",
	"MC": "Monaco",
	"MD": "Moldova",
	"ME": "Montenegro",
	"MF": "Saint Martin (French part)",
	"MG": "Madagascar",
	"MH": "Marshall Islands",
	"MK": "North Macedonia",
	"ML": "Mali",
	"MM": "Myanmar",
	"MN": "Mongolia",
	"MO": "Macao",
	"MP": "Northern Mariana Islands",
	"MQ": "Martinique",
	"MR": "Mauritania",
	"MS": "Montserrat",
	"MT": "Malta",
	"MU": "Mauritius",
	"MV": "Maldives",
	"MW": "Malawi",
	"MX": "Mexico",
	"MY": "Malaysia",
	"MZ": "Mozambique",
	"NA": "Namibia",
	"NC": "New Caledonia",
	"NE": "Niger",
	"NF": "Norfolk Island",
	"NG": "Nigeria",
	"NI": "Nicaragua",
	"NL": "Netherlands",
	"NO": "Norway",
	"NP": "Nepal",
	"NR": "Nauru",
	"NU": "Niue",
	"NZ": "New Zealand",
	"OM": "Oman",
	"PA": "Panama",
	"PE": "Peru",
	"PF": "French Polynesia",
	"PG": "Papua New Guinea",
	"PH": "Philippines",
	"PK": "Pakistan",
	"PL": "Poland",
	"PM": "Saint Pierre and Miquelon",
	"PN": "Pitcairn",
	"PR": "Puerto Rico",
	"PS": "Palestine, State of",
	"PT": "Portugal",
	"PW": "Palau",
	"PY": "Paraguay",
	"QA": "Qatar",
	"RE": "Réunion",
	"RO": "Romania",
	"RS": "Serbia",
	"RU": "Russian Federation",
	"RW": "Rwanda",
	"SA": "Saudi Arabia",
	"SB": "Solomon Islands",
	"SC": "Seychelles",
	"SD": "Sudan",
	"SE": "Sweden",
	"SG": "Singapore",
	"SH": "Saint Helena, Ascension and Tristan da Cunha",
	"SI": "Slovenia",
	"SJ": "Svalbard and Jan Mayen",
	"SK": "Slovakia",
	"SL": "Sierra Leone",
	"SM": "San Marino",
	"SN": "Senegal",
	"SO": "Somalia",
	"SR": "Suriname",
	"SS": "South Sudan",
	"ST": "Sao Tome and Principe",
	"SV": "El Salvador",
	"SX": "Sint Maarten (Dutch part)",
	"SY": "Syria",
	"SZ": "Eswatini",
	"TC": "Turks and Caicos Islands",
	"TD": "Chad",
	"TF": "French Southern Territories",
	"TG": "Togo",
	"TH": "Thailand",
	"TJ": "Tajikistan",
	"TK": "Tokelau",
	"TL": "Timor-Leste",
	"TM": "Turkmenistan",
	"TN": "Tunisia",
	"TO": "Tonga",
	"TR": "Türkiye",
	"TT": "Trinidad and Tobago",
	"TV": "Tuvalu",
	"TW": "Taiwan",
	"TZ": "Tanzania",
	"UA": "Ukraine",
	"UG": "Uganda",
	"UM": "United States Minor Outlying Islands",
	"US": "United States",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VA": "Holy See (Vatican City State)",
	"VC": "Saint Vincent and the Grenadines",
	"VE": "Venezuela",
	"VG": "Virgin Islands, British",
	"VI": "Virgin Islands, U.S.",
	"VN": "Vietnam",
	"VU": "Vanuatu",
	"WF": "Wallis and Futuna",
	"WS": "Samoa",
	"XK": "Kosovo",
	"YE": "Yemen",
	"YT": "Mayotte",
	"ZA": "South Africa",
	"ZM": "Zambia",
	"ZW": "Zimbabwe",
}
