package seed

import "aidmatch/pkg/types"

func Beneficiaries() []*types.Beneficiary {
	return []*types.Beneficiary{
		applicant("ben_6jkZhurmRLQfvpYUqMxLOg3q", "1990123456789", "Rahima Begum", dhaka("Dhaka", 23.8103, 90.4125), types.NeedCategoryMedical, 1500000, types.UrgencyCritical),
		applicant("ben_9zhVriEutWvq5T3HDnZbFKF2", "1985987654321", "Abdul Karim", dhaka("Gazipur", 23.9999, 90.4203), types.NeedCategoryMedical, 1200000, types.UrgencyHigh),
		applicant("ben_XdcrINdoyPHC06dLIeTiUUKn", "1992555000111", "Nasrin Akter", dhaka("Dhaka", 23.7461, 90.3742), types.NeedCategoryMedical, 4800000, types.UrgencyMedium),
		applicant("ben_CFThGLZNIfkNO2YuHJT45U62", "1978444333222", "Jamal Uddin", types.Location{Division: "Sylhet", District: "Sunamganj", Latitude: 25.0658, Longitude: 91.3950}, types.NeedCategoryDisasterRelief, 800000, types.UrgencyEmergency),
		applicant("ben_hCNHLll2vFEJtoqMTzPBw2wu", "1981222111000", "Shirin Sultana", types.Location{Division: "Sylhet", District: "Sylhet", Latitude: 24.8949, Longitude: 91.8687}, types.NeedCategoryShelter, 950000, types.UrgencyHigh),
		applicant("ben_XD03uWCpwHkceRFctNyqSGJW", "2001777888999", "Tanvir Hasan", types.Location{Division: "Chattogram", District: "Chattogram", Latitude: 22.3569, Longitude: 91.7832}, types.NeedCategoryEducation, 300000, types.UrgencyMedium),
		applicant("ben_hbcvyrgtizF7pMefhx0GuKiq", "1995666555444", "Mitu Das", types.Location{Division: "Khulna", District: "Satkhira", Latitude: 22.7185, Longitude: 89.0705}, types.NeedCategoryWater, 450000, types.UrgencyEmergency),
		applicant("ben_eC7uTWOiC7qs7ZtgSw55QI6p", "1988000999888", "Rafiq Mia", types.Location{Division: "Rajshahi", District: "Bogura", Latitude: 24.8465, Longitude: 89.3773}, types.NeedCategoryLivelihood, 600000, types.UrgencyMedium),
		// Same NID as Rahima Begum, filed from a different district.
		applicant("ben_ilRyj6Qn2R5WEuRHoiRSqp5U", "1990123456789", "Rahima B.", dhaka("Narayanganj", 23.6238, 90.5000), types.NeedCategoryMedical, 1500000, types.UrgencyCritical),
		applicant("ben_dO9zvwhgigMIBxXBTFa54z4n", "1999111222333", "Sumaiya Islam", types.Location{Division: "Mymensingh", District: "Mymensingh", Latitude: 24.7471, Longitude: 90.4203}, types.NeedCategoryFood, 200000, types.UrgencyHigh),
	}
}

func dhaka(district string, lat, lng float64) types.Location {
	return types.Location{Division: "Dhaka", District: district, Latitude: lat, Longitude: lng}
}

func applicant(id, nid, name string, loc types.Location, category types.NeedCategory, requestedCents int64, urgency types.Urgency) *types.Beneficiary {
	return &types.Beneficiary{
		ID:                   id,
		NIDNumber:            nid,
		FullName:             name,
		Location:             loc,
		NeedCategory:         category,
		AmountRequestedCents: requestedCents,
		Urgency:              urgency,
		ApplicationStatus:    types.ApplicationStatusVerified,
		VerificationStatus:   types.VerificationStatusVerified,
	}
}
