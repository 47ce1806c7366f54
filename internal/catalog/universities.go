package catalog

// Universities is the list of Nigerian universities offered during
// onboarding. Sorted alphabetically; never mutated at runtime.
var Universities = []string{
	"Adekunle Ajasin University (AAUA)",
	"Afe Babalola University (ABUAD)",
	"Ahmadu Bello University (ABU)",
	"Babcock University",
	"Bayero University Kano (BUK)",
	"Benue State University (BSU)",
	"Covenant University (CU)",
	"Delta State University (DELSU)",
	"Ebonyi State University (EBSU)",
	"Ekiti State University (EKSU)",
	"Federal University of Technology, Akure (FUTA)",
	"Federal University of Technology, Minna (FUTMINNA)",
	"Federal University of Technology, Owerri (FUTO)",
	"Kaduna State University (KASU)",
	"Kwara State University (KWASU)",
	"Ladoke Akintola University of Technology (LAUTECH)",
	"Lagos State University (LASU)",
	"Landmark University",
	"Michael Okpara University of Agriculture (MOUAU)",
	"Nile University of Nigeria",
	"Nnamdi Azikiwe University (UNIZIK)",
	"Obafemi Awolowo University (OAU)",
	"Olabisi Onabanjo University (OOU)",
	"Pan-Atlantic University (PAU)",
	"Redeemer's University",
	"Rivers State University (RSU)",
	"University of Abuja (UNIABUJA)",
	"University of Benin (UNIBEN)",
	"University of Ibadan (UI)",
	"University of Ilorin (UNILORIN)",
	"University of Jos (UNIJOS)",
	"University of Lagos (UNILAG)",
	"University of Nigeria, Nsukka (UNN)",
	"University of Port Harcourt (UNIPORT)",
	"Usman Danfodiyo University, Sokoto (UDUS)",
}
