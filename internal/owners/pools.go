package owners

var llcNames = []string{
	"Brickell Capital Holdings LLC",
	"Coral Gables Investment Group",
	"South Beach Properties Inc",
	"Miamicom Investments LLC",
	"Coconut Grove Ventures LLC",
	"Wynwood Capital Partners",
	"Key Biscayne Trust Co.",
	"Doral Real Estate Holdings",
	"Aventura Asset Management LLC",
	"Pinecrest Family Trust",
	"Edgewater Development Corp",
	"Little Havana Properties LLC",
	"Design District Capital LLC",
	"Midtown Miami Holdings",
	"Sunny Isles Investment Trust",
}

var individualNames = []string{
	"Maria C. Fernandez",
	"Carlos A. Rodriguez",
	"James R. Sullivan",
	"Patricia L. Chen",
	"Roberto E. Gonzalez",
	"Sarah M. Williams",
	"Miguel A. Perez",
	"Jennifer K. Thompson",
	"David R. Martinez",
	"Ana L. Castillo",
}

var mailingAddresses = []string{
	"1200 Brickell Ave, Suite 1800, Miami, FL 33131",
	"2665 S Bayshore Dr, PH-1, Coconut Grove, FL 33133",
	"900 S Miami Ave, Suite 400, Miami, FL 33130",
	"3250 NE 1st Ave, Suite 305, Miami, FL 33137",
	"8950 SW 74th Ct, Suite 2201, Miami, FL 33156",
	"1111 Lincoln Rd, Suite 600, Miami Beach, FL 33139",
	"701 Brickell Ave, Suite 1550, Miami, FL 33131",
	"333 SE 2nd Ave, Suite 2000, Miami, FL 33131",
	"2801 Collins Ave, Suite 700, Miami Beach, FL 33140",
	"1395 Brickell Ave, Suite 800, Miami, FL 33131",
}
