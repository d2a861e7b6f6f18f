package email

const (
	subjectContactFmt    = "Ny kontaktforespørsel fra %s"
	subjectPriceQuoteFmt = "Nytt prisforslag fra %s"
	subjectCalculator    = "Ny prisberegning"
	subjectNewsletter    = "Ny nyhetsbrev-abonnement"
)
