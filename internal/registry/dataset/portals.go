package dataset

import "proplink/internal/registry/models"

func dorisRecords() []models.DorisRecord {
	return []models.DorisRecord{
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "MH1234567",
				RegistrationNumber: "REG/MH/2022/12345",
				OwnerDetails: []models.Owner{
					{Name: "Rajesh Kumar", IdentificationNumber: "ABCDE1234F", IdentificationType: "PAN", OwnershipPercentage: models.Float(50), OwnershipType: "JOINT",
						ContactInformation: &models.Contact{Address: "123, Pali Hill, Bandra West, Mumbai - 400050", Phone: "+91-9876543210", Email: "rajesh.kumar@example.com"}},
					{Name: "Priya Kumar", IdentificationNumber: "FGHIJ5678K", IdentificationType: "PAN", OwnershipPercentage: models.Float(50), OwnershipType: "JOINT"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:     "123, Pali Hill, Bandra West, Mumbai - 400050",
					Area:        "1200",
					AreaUnit:    "SQ_FT",
					Type:        "RESIDENTIAL",
					SubType:     "APARTMENT",
					Description: "3 BHK apartment on the 5th floor",
					Coordinates: &models.Coordinates{Latitude: models.Float(19.0596), Longitude: models.Float(72.8295)},
					Boundaries:  &models.Boundaries{North: "Pali Hill Road", South: "Residential Complex", East: "Garden", West: "Parking Area"},
				},
				Encumbrances: []models.Encumbrance{
					{Type: "MORTGAGE", Holder: "State Bank of India", Amount: 5000000, DateCreated: "2022-01-15", DateExpiry: "2042-01-14", Status: "ACTIVE",
						Details: "Home loan", DocumentReference: "MORT/MH/2022/00123"},
				},
				TransactionHistory: []models.Transaction{
					{Date: "2022-01-10", Type: "SALE", Amount: 25000000, DocumentReference: "DOC/MH/2022/12345", RegistrationNumber: "REG/MH/2022/12345",
						RegistrationDate: "2022-01-10", RegistrationOffice: "Sub-Registrar Office, Bandra",
						Parties: []models.Party{
							{Role: "SELLER", Name: "Anil Mehta", IdentificationNumber: "KLMNO9012P"},
							{Role: "BUYER", Name: "Rajesh Kumar", IdentificationNumber: "ABCDE1234F"},
							{Role: "BUYER", Name: "Priya Kumar", IdentificationNumber: "FGHIJ5678K"},
						}},
				},
				Documents: []models.Document{
					{Type: "SALE_DEED", Number: "SD/MH/2022/12345", IssuedDate: "2022-01-10", IssuedBy: "Sub-Registrar Office, Bandra", Status: "VALID"},
				},
				LastUpdated: "2023-01-20T10:30:00Z",
				DataSource:  "DORIS",
			},
			RegistrationDetails: &models.RegistrationDetails{
				RegistrationDate: "2022-01-10", RegistrationOffice: "Sub-Registrar Office, Bandra", RegistrationFee: 30000, StampDuty: 1250000,
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "MH7654321",
				RegistrationNumber: "REG/MH/2021/54321",
				OwnerDetails: []models.Owner{
					{Name: "ABC Properties Private Limited", IdentificationNumber: "U12345MH2010PLC123456", IdentificationType: "CIN",
						OwnershipPercentage: models.Float(100), OwnershipType: "CORPORATE"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:  "456, Marine Drive, Mumbai - 400020",
					Area:     "5000",
					AreaUnit: "SQ_FT",
					Type:     "COMMERCIAL",
					SubType:  "OFFICE",
				},
				TransactionHistory: []models.Transaction{
					{Date: "2021-06-20", Type: "SALE", Amount: 120000000, DocumentReference: "DOC/MH/2021/54321", RegistrationNumber: "REG/MH/2021/54321",
						RegistrationDate: "2021-06-20", RegistrationOffice: "Sub-Registrar Office, Fort",
						Parties: []models.Party{
							{Role: "SELLER", Name: "Marine Realty LLP"},
							{Role: "BUYER", Name: "ABC Properties Private Limited", IdentificationNumber: "U12345MH2010PLC123456"},
						}},
				},
				Documents: []models.Document{
					{Type: "SALE_DEED", Number: "SD/MH/2021/54321", IssuedDate: "2021-06-20", IssuedBy: "Sub-Registrar Office, Fort", Status: "VALID"},
				},
				LastUpdated: "2022-07-15T09:00:00Z",
				DataSource:  "DORIS",
			},
			RegistrationDetails: &models.RegistrationDetails{
				RegistrationDate: "2021-06-20", RegistrationOffice: "Sub-Registrar Office, Fort", RegistrationFee: 30000, StampDuty: 6000000,
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "DL8765432",
				RegistrationNumber: "REG/DL/2020/87654",
				OwnerDetails: []models.Owner{
					{Name: "Amit Sharma", IdentificationNumber: "DEFGH1234I", IdentificationType: "PAN", OwnershipPercentage: models.Float(100), OwnershipType: "SOLE"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:     "789, Vasant Vihar, New Delhi - 110057",
					Area:        "3200",
					AreaUnit:    "SQ_FT",
					Type:        "RESIDENTIAL",
					SubType:     "INDEPENDENT_HOUSE",
					Coordinates: &models.Coordinates{Latitude: models.Float(28.5603), Longitude: models.Float(77.1605)},
				},
				Encumbrances: []models.Encumbrance{
					{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 15000000, DateCreated: "2020-08-15", DateExpiry: "2040-08-14", Status: "ACTIVE"},
				},
				TransactionHistory: []models.Transaction{
					{Date: "2020-08-10", Type: "SALE", Amount: 45000000, DocumentReference: "DOC/DL/2020/87654", RegistrationNumber: "REG/DL/2020/87654",
						RegistrationDate: "2020-08-10", RegistrationOffice: "Sub-Registrar Office, Vasant Vihar",
						Parties: []models.Party{
							{Role: "SELLER", Name: "Sunil Verma"},
							{Role: "BUYER", Name: "Amit Sharma", IdentificationNumber: "DEFGH1234I"},
						}},
				},
				LastUpdated: "2022-09-01T12:00:00Z",
				DataSource:  "DORIS",
			},
			RegistrationDetails: &models.RegistrationDetails{
				RegistrationDate: "2020-08-10", RegistrationOffice: "Sub-Registrar Office, Vasant Vihar", RegistrationFee: 30000, StampDuty: 2700000,
			},
		},
	}
}

func dlrRecords() []models.DlrRecord {
	return []models.DlrRecord{
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "MH1234567",
				RegistrationNumber: "REG/MH/2022/12345",
				OwnerDetails: []models.Owner{
					{Name: "Rajesh Kumar", IdentificationNumber: "ABCDE1234F", IdentificationType: "PAN", OwnershipPercentage: models.Float(50), OwnershipType: "JOINT"},
					{Name: "Priya Kumar", IdentificationNumber: "FGHIJ5678K", IdentificationType: "PAN", OwnershipPercentage: models.Float(50), OwnershipType: "JOINT"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:  "123, Pali Hill, Bandra West, Mumbai - 400050",
					Area:     "1200",
					AreaUnit: "SQ_FT",
					Type:     "RESIDENTIAL",
					LandMark: "Near Mount Carmel Church",
				},
				TransactionHistory: []models.Transaction{
					{Date: "2022-01-10", Type: "SALE", Amount: 25000000, DocumentReference: "DOC/MH/2022/12345",
						Parties: []models.Party{
							{Role: "SELLER", Name: "Anil Mehta"},
							{Role: "BUYER", Name: "Rajesh Kumar"},
						}},
					{Date: "2015-03-20", Type: "SALE", Amount: 14000000, DocumentReference: "DOC/MH/2015/04521",
						Parties: []models.Party{
							{Role: "SELLER", Name: "Pali Hill Constructions"},
							{Role: "BUYER", Name: "Anil Mehta", IdentificationNumber: "KLMNO9012P"},
						}},
				},
				Documents: []models.Document{
					{Type: "PROPERTY_CARD", Number: "PC/MH/2022/7781", IssuedDate: "2022-02-01", IssuedBy: "City Survey Office, Bandra", Status: "VALID"},
				},
				LastUpdated: "2023-03-10T14:20:00Z",
				DataSource:  "DLR",
			},
			LandRecordDetails: &models.LandRecordDetails{
				KhasraNumber: "123/4", KhataNumber: "567", LandUse: "RESIDENTIAL", LandClassification: "Non-Agricultural",
				RevenueDistrict: "Mumbai Suburban", Tehsil: "Andheri", Village: "Bandra",
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "MH7654321",
				RegistrationNumber: "REG/MH/2021/54321",
				OwnerDetails: []models.Owner{
					{Name: "ABC Properties Private Limited", IdentificationNumber: "U12345MH2010PLC123456", IdentificationType: "CIN", OwnershipType: "CORPORATE"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:  "456, Marine Drive, Mumbai - 400020",
					Area:     "5000",
					AreaUnit: "SQ_FT",
					Type:     "COMMERCIAL",
				},
				LastUpdated: "2022-05-01T08:45:00Z",
				DataSource:  "DLR",
			},
			LandRecordDetails: &models.LandRecordDetails{
				KhasraNumber: "45/2", KhataNumber: "210", LandUse: "COMMERCIAL", LandClassification: "Non-Agricultural",
				RevenueDistrict: "Mumbai City", Tehsil: "Fort", Village: "Colaba",
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "DL8765432",
				RegistrationNumber: "REG/DL/2020/87654",
				OwnerDetails: []models.Owner{
					{Name: "Amit Sharma", IdentificationNumber: "DEFGH1234I", IdentificationType: "PAN", OwnershipType: "SOLE"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:  "789, Vasant Vihar, New Delhi - 110057",
					Area:     "3200",
					AreaUnit: "SQ_FT",
					Type:     "RESIDENTIAL",
				},
				LastUpdated: "2021-11-30T16:10:00Z",
				DataSource:  "DLR",
			},
			LandRecordDetails: &models.LandRecordDetails{
				KhasraNumber: "78/1", KhataNumber: "332", LandUse: "RESIDENTIAL", LandClassification: "Non-Agricultural",
				RevenueDistrict: "South West Delhi", Tehsil: "Vasant Vihar", Village: "Munirka",
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "KA9876543",
				RegistrationNumber: "REG/KA/2020/98765",
				OwnerDetails: []models.Owner{
					{Name: "Venkatesh Rao", IdentificationNumber: "QRSTU5678V", IdentificationType: "PAN", OwnershipPercentage: models.Float(100), OwnershipType: "SOLE"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:  "789, Indiranagar, Bangalore - 560038",
					Area:     "2400",
					AreaUnit: "SQ_FT",
					Type:     "RESIDENTIAL",
					SubType:  "INDEPENDENT_HOUSE",
				},
				Encumbrances: []models.Encumbrance{
					{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 8000000, DateCreated: "2020-03-10", DateExpiry: "2035-03-09", Status: "ACTIVE"},
				},
				TransactionHistory: []models.Transaction{
					{Date: "2020-03-01", Type: "SALE", Amount: 18000000, DocumentReference: "DOC/KA/2020/98765",
						Parties: []models.Party{
							{Role: "SELLER", Name: "Lakshmi Narayan"},
							{Role: "BUYER", Name: "Venkatesh Rao", IdentificationNumber: "QRSTU5678V"},
						}},
				},
				LastUpdated: "2022-04-18T11:00:00Z",
				DataSource:  "DLR",
			},
			LandRecordDetails: &models.LandRecordDetails{
				KhasraNumber: "234/1", KhataNumber: "889", LandUse: "RESIDENTIAL", LandClassification: "Converted",
				RevenueDistrict: "Bangalore Urban", Tehsil: "Bangalore East", Village: "Indiranagar",
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "KA1122334",
				RegistrationNumber: "REG/KA/2021/11223",
				OwnerDetails: []models.Owner{
					{Name: "XYZ Developers Limited", IdentificationNumber: "L67890KA2015PLC654321", IdentificationType: "CIN", OwnershipPercentage: models.Float(100), OwnershipType: "CORPORATE"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:  "101, Koramangala, Bangalore - 560034",
					Area:     "50000",
					AreaUnit: "SQ_FT",
					Type:     "RESIDENTIAL",
					SubType:  "RESIDENTIAL_COMPLEX",
				},
				Encumbrances: []models.Encumbrance{
					{Type: "MORTGAGE", Holder: "Axis Bank", Amount: 350000000, DateCreated: "2016-08-01", Status: "ACTIVE", Details: "Construction finance"},
				},
				LastUpdated: "2022-12-05T10:00:00Z",
				DataSource:  "DLR",
			},
			LandRecordDetails: &models.LandRecordDetails{
				KhasraNumber: "89/3", KhataNumber: "1204", LandUse: "RESIDENTIAL", LandClassification: "Converted",
				RevenueDistrict: "Bangalore Urban", Tehsil: "Bangalore South", Village: "Koramangala",
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "TN5544332",
				RegistrationNumber: "REG/TN/2019/55443",
				OwnerDetails: []models.Owner{
					{Name: "XYZ Developers Limited", IdentificationNumber: "L67890KA2015PLC654321", IdentificationType: "CIN", OwnershipPercentage: models.Float(100), OwnershipType: "CORPORATE"},
				},
				PropertyDetails: &models.PropertyDetails{
					Address:  "Plot 78, OMR Road, Chennai - 600097",
					Area:     "100000",
					AreaUnit: "SQ_FT",
					Type:     "COMMERCIAL",
					SubType:  "IT_PARK",
				},
				Encumbrances: []models.Encumbrance{
					{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 600000000, DateCreated: "2019-04-10", DateExpiry: "2029-04-09", Status: "ACTIVE"},
				},
				LastUpdated: "2022-10-12T09:30:00Z",
				DataSource:  "DLR",
			},
			LandRecordDetails: &models.LandRecordDetails{
				KhasraNumber: "156/2", KhataNumber: "4410", LandUse: "COMMERCIAL", LandClassification: "Non-Agricultural",
				RevenueDistrict: "Chennai", Tehsil: "Sholinganallur", Village: "Thoraipakkam",
			},
		},
	}
}

func cersaiRecords() []models.CersaiRecord {
	return []models.CersaiRecord{
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "MH1234567",
				RegistrationNumber: "REG/MH/2022/12345",
				PropertyDetails: &models.PropertyDetails{
					Address: "123, Pali Hill, Bandra West, Mumbai - 400050", Type: "RESIDENTIAL", SubType: "APARTMENT", Area: "1200", AreaUnit: "SQ_FT",
				},
				LastUpdated: "2023-02-15T11:45:30Z",
				DataSource:  "CERSAI",
			},
			AssetID: "CERSAI123456",
			SecurityInterests: []models.SecurityInterest{
				{Type: "MORTGAGE", Holder: "State Bank of India", Amount: 5000000, DateCreated: "2022-01-15", DateExpiry: "2042-01-14", Status: "ACTIVE",
					Details: "Home loan against property", LoanAccountNumber: "SBIHL12345", InterestRate: 7.5, LoanTenure: 240, MonthlyInstallment: 40378},
			},
			BorrowerDetails: []models.Owner{
				{Name: "Rajesh Kumar", IdentificationNumber: "ABCDE1234F", IdentificationType: "PAN",
					ContactInformation: &models.Contact{Address: "123, Pali Hill, Bandra West, Mumbai - 400050", Phone: "+91-9876543210", Email: "rajesh.kumar@example.com"}},
				{Name: "Priya Kumar", IdentificationNumber: "FGHIJ5678K", IdentificationType: "PAN",
					ContactInformation: &models.Contact{Address: "123, Pali Hill, Bandra West, Mumbai - 400050", Phone: "+91-9876543211", Email: "priya.kumar@example.com"}},
			},
			LenderDetails: &models.Lender{
				Name: "State Bank of India", Branch: "Bandra West Branch", IFSCCode: "SBIN0005678",
				ContactInformation: &models.Contact{Address: "SBI Bandra West Branch, Mumbai - 400050", Phone: "+91-2222345678", Email: "sbi.05678@sbi.co.in"},
			},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "KA9876543",
				RegistrationNumber: "REG/KA/2020/98765",
				PropertyDetails: &models.PropertyDetails{
					Address: "789, Indiranagar, Bangalore - 560038", Type: "RESIDENTIAL", SubType: "INDEPENDENT_HOUSE", Area: "2400", AreaUnit: "SQ_FT",
				},
				LastUpdated: "2022-04-20T09:15:45Z",
				DataSource:  "CERSAI",
			},
			AssetID: "CERSAI789012",
			SecurityInterests: []models.SecurityInterest{
				{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 8000000, DateCreated: "2020-03-10", DateExpiry: "2035-03-09", Status: "ACTIVE",
					Details: "Home loan", LoanAccountNumber: "HDFCHL78901", InterestRate: 8.1, LoanTenure: 180, MonthlyInstallment: 77128},
			},
			BorrowerDetails: []models.Owner{
				{Name: "Venkatesh Rao", IdentificationNumber: "QRSTU5678V", IdentificationType: "PAN"},
			},
			LenderDetails: &models.Lender{Name: "HDFC Bank", Branch: "Indiranagar Branch", IFSCCode: "HDFC0001234"},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "DL8765432",
				RegistrationNumber: "REG/DL/2020/87654",
				PropertyDetails: &models.PropertyDetails{
					Address: "789, Vasant Vihar, New Delhi - 110057", Type: "RESIDENTIAL", SubType: "INDEPENDENT_HOUSE", Area: "3200", AreaUnit: "SQ_FT",
				},
				LastUpdated: "2022-09-10T14:30:20Z",
				DataSource:  "CERSAI",
			},
			AssetID: "CERSAI345678",
			SecurityInterests: []models.SecurityInterest{
				{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 15000000, DateCreated: "2020-08-15", DateExpiry: "2040-08-14", Status: "ACTIVE",
					Details: "Home loan", LoanAccountNumber: "HDFCHL34567", InterestRate: 7.9, LoanTenure: 240, MonthlyInstallment: 124600},
			},
			BorrowerDetails: []models.Owner{
				{Name: "Amit Sharma", IdentificationNumber: "DEFGH1234I", IdentificationType: "PAN"},
			},
			LenderDetails: &models.Lender{Name: "HDFC Bank", Branch: "Vasant Vihar Branch", IFSCCode: "HDFC0002345"},
		},
		{
			PropertyRecord: models.PropertyRecord{
				PropertyID:         "TN5544332",
				RegistrationNumber: "REG/TN/2019/55443",
				PropertyDetails: &models.PropertyDetails{
					Address: "Plot 78, OMR Road, Chennai - 600097", Type: "COMMERCIAL", SubType: "IT_PARK", Area: "100000", AreaUnit: "SQ_FT",
				},
				LastUpdated: "2023-03-05T16:20:10Z",
				DataSource:  "CERSAI",
			},
			AssetID: "CERSAI901234",
			SecurityInterests: []models.SecurityInterest{
				{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 600000000, DateCreated: "2019-04-10", DateExpiry: "2029-04-09", Status: "ACTIVE",
					Details: "Project finance", LoanAccountNumber: "HDFCPL90123", InterestRate: 8.5, LoanTenure: 120},
			},
			BorrowerDetails: []models.Owner{
				{Name: "XYZ Developers Limited", IdentificationNumber: "L67890KA2015PLC654321", IdentificationType: "CIN", OwnershipType: "CORPORATE"},
			},
			LenderDetails: &models.Lender{Name: "HDFC Bank", Branch: "Corporate Banking, Chennai", IFSCCode: "HDFC0000060"},
		},
	}
}

func mca21Records() []models.Mca21Record {
	return []models.Mca21Record{
		{
			CINNumber:           "U12345MH2010PLC123456",
			CompanyName:         "ABC Properties Private Limited",
			RegisteredAddress:   "10th Floor, Express Towers, Nariman Point, Mumbai - 400021",
			DateOfIncorporation: "2010-05-15",
			AuthorizedCapital:   10000000,
			PaidUpCapital:       5000000,
			CompanyStatus:       "ACTIVE",
			Directors: []models.Director{
				{Name: "Vikram Mehta", DIN: "00123456", Designation: "Managing Director", AppointmentDate: "2010-05-15"},
				{Name: "Sunita Sharma", DIN: "00654321", Designation: "Director", AppointmentDate: "2010-05-15"},
				{Name: "Rahul Kapoor", DIN: "00789012", Designation: "Director", AppointmentDate: "2015-08-20"},
			},
			PropertyHoldings: []models.PropertyHolding{
				{PropertyID: "MH7654321", RegistrationNumber: "REG/MH/2021/54321", Address: "456, Marine Drive, Mumbai - 400020",
					Type: "Commercial Office", Area: "5000 sq ft", AcquisitionDate: "2021-06-20", AcquisitionValue: 120000000, Encumbrances: []models.Encumbrance{}},
				{PropertyID: "DL9876543", RegistrationNumber: "REG/DL/2018/87654", Address: "Plot 123, Sector 44, Gurugram - 122003",
					Type: "Commercial Land", Area: "2 acres", AcquisitionDate: "2018-11-10", AcquisitionValue: 200000000,
					Encumbrances: []models.Encumbrance{
						{Type: "MORTGAGE", Holder: "ICICI Bank", Amount: 150000000, DateCreated: "2018-12-05", Status: "ACTIVE"},
					}},
			},
			FinancialInformation: &models.FinancialInformation{LastFiledYear: "2022-2023", Turnover: 250000000, NetWorth: 180000000, ProfitAfterTax: 35000000},
			PropertyRecord:       models.PropertyRecord{LastUpdated: "2023-04-30T10:00:00Z", DataSource: "MCA21"},
		},
		{
			CINNumber:           "L67890KA2015PLC654321",
			CompanyName:         "XYZ Developers Limited",
			RegisteredAddress:   "42, MG Road, Bangalore - 560001",
			DateOfIncorporation: "2015-02-28",
			AuthorizedCapital:   500000000,
			PaidUpCapital:       300000000,
			CompanyStatus:       "ACTIVE",
			Directors: []models.Director{
				{Name: "Arjun Singh", DIN: "01234567", Designation: "Chairman", AppointmentDate: "2015-02-28"},
				{Name: "Priya Patel", DIN: "07654321", Designation: "Managing Director", AppointmentDate: "2015-02-28"},
				{Name: "Sanjay Gupta", DIN: "08765432", Designation: "Independent Director", AppointmentDate: "2018-04-15"},
				{Name: "Meera Reddy", DIN: "09876543", Designation: "Independent Director", AppointmentDate: "2018-04-15"},
			},
			PropertyHoldings: []models.PropertyHolding{
				{PropertyID: "KA1122334", RegistrationNumber: "REG/KA/2021/11223", Address: "101, Koramangala, Bangalore - 560034",
					Type: "Residential Complex", Area: "50000 sq ft", AcquisitionDate: "2016-07-12", AcquisitionValue: 500000000,
					Encumbrances: []models.Encumbrance{
						{Type: "MORTGAGE", Holder: "Axis Bank", Amount: 350000000, DateCreated: "2016-08-01", Status: "ACTIVE"},
					}},
				{PropertyID: "TN5544332", RegistrationNumber: "REG/TN/2019/55443", Address: "Plot 78, OMR Road, Chennai - 600097",
					Type: "IT Park", Area: "100000 sq ft", AcquisitionDate: "2019-03-25", AcquisitionValue: 800000000,
					Encumbrances: []models.Encumbrance{
						{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 600000000, DateCreated: "2019-04-10", DateExpiry: "2029-04-09", Status: "ACTIVE"},
					}},
			},
			FinancialInformation: &models.FinancialInformation{LastFiledYear: "2022-2023", Turnover: 1200000000, NetWorth: 950000000, ProfitAfterTax: 180000000},
			PropertyRecord:       models.PropertyRecord{LastUpdated: "2023-05-15T12:00:00Z", DataSource: "MCA21"},
		},
		{
			CINNumber:           "U98765DL2012PLC987654",
			CompanyName:         "Capital Estates Private Limited",
			RegisteredAddress:   "12, Connaught Place, New Delhi - 110001",
			DateOfIncorporation: "2012-09-03",
			AuthorizedCapital:   25000000,
			PaidUpCapital:       20000000,
			CompanyStatus:       "ACTIVE",
			Directors: []models.Director{
				{Name: "Amit Sharma", DIN: "03456789", Designation: "Managing Director", AppointmentDate: "2012-09-03"},
				{Name: "Neha Sharma", DIN: "03456790", Designation: "Director", AppointmentDate: "2012-09-03"},
			},
			PropertyHoldings: []models.PropertyHolding{
				{PropertyID: "DL8765432", RegistrationNumber: "REG/DL/2020/87654", Address: "789, Vasant Vihar, New Delhi - 110057",
					Type: "Residential", Area: "3200 sq ft", AcquisitionDate: "2020-08-10", AcquisitionValue: 45000000,
					Encumbrances: []models.Encumbrance{
						{Type: "MORTGAGE", Holder: "HDFC Bank", Amount: 15000000, DateCreated: "2020-08-15", DateExpiry: "2040-08-14", Status: "ACTIVE"},
					}},
			},
			FinancialInformation: &models.FinancialInformation{LastFiledYear: "2022-2023", Turnover: 42000000, NetWorth: 61000000, ProfitAfterTax: 5200000},
			PropertyRecord:       models.PropertyRecord{LastUpdated: "2023-02-28T09:00:00Z", DataSource: "MCA21"},
		},
	}
}
