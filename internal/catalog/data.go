package catalog

import "github.com/okcomputer/dividend-dashboard-backend/internal/model"

// globalStockDatabase is the compiled-in global high-yield dividend stock
// universe. Duplicate entries (e.g. ASML.AS appears three times, and 005930.KS
// is used by two different companies) are present in the source data and are
// intentionally kept.
var globalStockDatabase = []model.SecurityRecord{
	{Symbol: "BDX", Name: "Becton Dickinson", Country: "USA", Region: "North America", Sector: "Healthcare", DividendYield: 2.24, PayoutRatio: 45, MarketCap: 68.5, PERatio: 25.3, Price: 239.00, Beta: 0.85, Rating: model.RatingBuy, Confidence: 92},
	{Symbol: "CLX", Name: "Clorox Company", Country: "USA", Region: "North America", Sector: "Consumer Defensive", DividendYield: 4.28, PayoutRatio: 62, MarketCap: 20.8, PERatio: 28.1, Price: 166.20, Beta: 0.92, Rating: model.RatingHold, Confidence: 78},
	{Symbol: "BF.B", Name: "Brown-Forman", Country: "USA", Region: "North America", Sector: "Consumer Defensive", DividendYield: 3.24, PayoutRatio: 58, MarketCap: 13.2, PERatio: 22.4, Price: 28.00, Beta: 0.78, Rating: model.RatingBuy, Confidence: 85},
	{Symbol: "AMCR", Name: "Amcor PLC", Country: "USA", Region: "North America", Sector: "Consumer Cyclical", DividendYield: 6.27, PayoutRatio: 71, MarketCap: 12.1, PERatio: 18.9, Price: 8.21, Beta: 1.12, Rating: model.RatingHold, Confidence: 73},
	{Symbol: "FDS", Name: "FactSet Research", Country: "USA", Region: "North America", Sector: "Financial Services", DividendYield: 1.54, PayoutRatio: 28, MarketCap: 10.9, PERatio: 31.2, Price: 284.90, Beta: 0.73, Rating: model.RatingBuy, Confidence: 88},
	{Symbol: "APD", Name: "Air Products & Chemicals", Country: "USA", Region: "North America", Sector: "Basic Materials", DividendYield: 2.81, PayoutRatio: 52, MarketCap: 68.3, PERatio: 24.7, Price: 305.80, Beta: 0.89, Rating: model.RatingBuy, Confidence: 91},
	{Symbol: "HRL", Name: "Hormel Foods", Country: "USA", Region: "North America", Sector: "Consumer Defensive", DividendYield: 4.87, PayoutRatio: 68, MarketCap: 13.1, PERatio: 19.8, Price: 23.76, Beta: 0.95, Rating: model.RatingHold, Confidence: 76},
	{Symbol: "MDT", Name: "Medtronic PLC", Country: "USA", Region: "North America", Sector: "Healthcare", DividendYield: 3.03, PayoutRatio: 49, MarketCap: 125.2, PERatio: 23.1, Price: 94.08, Beta: 0.82, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "PPG", Name: "PPG Industries", Country: "USA", Region: "North America", Sector: "Basic Materials", DividendYield: 2.74, PayoutRatio: 44, MarketCap: 24.6, PERatio: 26.5, Price: 103.70, Beta: 1.05, Rating: model.RatingBuy, Confidence: 86},
	{Symbol: "KMB", Name: "Kimberly-Clark", Country: "USA", Region: "North America", Sector: "Consumer Defensive", DividendYield: 4.24, PayoutRatio: 59, MarketCap: 40.3, PERatio: 21.8, Price: 118.80, Beta: 0.88, Rating: model.RatingHold, Confidence: 79},
	{Symbol: "CVX", Name: "Chevron Corporation", Country: "USA", Region: "North America", Sector: "Energy", DividendYield: 4.40, PayoutRatio: 65, MarketCap: 285.1, PERatio: 15.2, Price: 148.50, Beta: 1.15, Rating: model.RatingBuy, Confidence: 89},
	{Symbol: "TROW", Name: "T. Rowe Price", Country: "USA", Region: "North America", Sector: "Financial Services", DividendYield: 4.98, PayoutRatio: 56, MarketCap: 27.8, PERatio: 16.9, Price: 125.40, Beta: 1.02, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "MKC", Name: "McCormick & Company", Country: "USA", Region: "North America", Sector: "Consumer Staples", DividendYield: 2.70, PayoutRatio: 51, MarketCap: 19.7, PERatio: 29.3, Price: 72.30, Beta: 0.91, Rating: model.RatingHold, Confidence: 74},
	{Symbol: "CAH", Name: "Cardinal Health", Country: "USA", Region: "North America", Sector: "Healthcare", DividendYield: 1.30, PayoutRatio: 25, MarketCap: 18.9, PERatio: 18.7, Price: 78.45, Beta: 0.76, Rating: model.RatingBuy, Confidence: 87},
	{Symbol: "GD", Name: "General Dynamics", Country: "USA", Region: "North America", Sector: "Industrials", DividendYield: 1.80, PayoutRatio: 38, MarketCap: 78.2, PERatio: 20.4, Price: 285.60, Beta: 0.84, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "ERIE", Name: "Erie Indemnity", Country: "USA", Region: "North America", Sector: "Financial Services", DividendYield: 1.70, PayoutRatio: 35, MarketCap: 15.3, PERatio: 27.8, Price: 295.80, Beta: 0.73, Rating: model.RatingHold, Confidence: 77},
	{Symbol: "MO", Name: "Altria Group", Country: "USA", Region: "North America", Sector: "Consumer Defensive", DividendYield: 6.10, PayoutRatio: 78, MarketCap: 82.4, PERatio: 12.1, Price: 45.20, Beta: 0.68, Rating: model.RatingSell, Confidence: 68},
	{Symbol: "VZ", Name: "Verizon Communications", Country: "USA", Region: "North America", Sector: "Communication Services", DividendYield: 6.00, PayoutRatio: 72, MarketCap: 165.8, PERatio: 14.3, Price: 39.85, Beta: 0.71, Rating: model.RatingHold, Confidence: 71},
	{Symbol: "PFE", Name: "Pfizer Inc.", Country: "USA", Region: "North America", Sector: "Healthcare", DividendYield: 6.80, PayoutRatio: 85, MarketCap: 158.2, PERatio: 11.2, Price: 28.45, Beta: 0.65, Rating: model.RatingSell, Confidence: 65},
	{Symbol: "DOC", Name: "Healthpeak Properties", Country: "USA", Region: "North America", Sector: "Real Estate", DividendYield: 7.10, PayoutRatio: 89, MarketCap: 8.9, PERatio: 9.8, Price: 15.30, Beta: 0.62, Rating: model.RatingSell, Confidence: 62},
	{Symbol: "ADN.TO", Name: "Acadian Timber Corp", Country: "Canada", Region: "North America", Sector: "Non-energy minerals", DividendYield: 8.02, PayoutRatio: 85, MarketCap: 0.26, PERatio: 17.39, Price: 14.47, Beta: 0.88, Rating: model.RatingHold, Confidence: 72},
	{Symbol: "VCI.TO", Name: "Vitreous Glass Inc", Country: "Canada", Region: "North America", Sector: "Process industries", DividendYield: 7.91, PayoutRatio: 78, MarketCap: 0.04, PERatio: 14.96, Price: 6.24, Beta: 0.92, Rating: model.RatingBuy, Confidence: 81},
	{Symbol: "DIV.TO", Name: "Diversified Royalty Corp", Country: "Canada", Region: "North America", Sector: "Commercial services", DividendYield: 7.88, PayoutRatio: 82, MarketCap: 0.54, PERatio: 21.09, Price: 3.49, Beta: 0.95, Rating: model.RatingBuy, Confidence: 79},
	{Symbol: "FC.TO", Name: "Firm Capital Mortgage Investment", Country: "Canada", Region: "North America", Sector: "Finance", DividendYield: 7.88, PayoutRatio: 76, MarketCap: 0.44, PERatio: 11.59, Price: 11.88, Beta: 0.87, Rating: model.RatingStrongBuy, Confidence: 89},
	{Symbol: "AFM.TO", Name: "Alphamin Resources Corp", Country: "Canada", Region: "North America", Sector: "Non-energy minerals", DividendYield: 7.84, PayoutRatio: 88, MarketCap: 1.3, PERatio: 7.86, Price: 1.02, Beta: 1.25, Rating: model.RatingHold, Confidence: 74},
	{Symbol: "SOBO.TO", Name: "South Bow Corp", Country: "Canada", Region: "North America", Sector: "Industrial services", DividendYield: 7.83, PayoutRatio: 79, MarketCap: 7.58, PERatio: 22.60, Price: 36.41, Beta: 1.08, Rating: model.RatingHold, Confidence: 76},
	{Symbol: "DCM.TO", Name: "DATA Communications Management", Country: "Canada", Region: "North America", Sector: "Commercial services", DividendYield: 7.75, PayoutRatio: 84, MarketCap: 0.07, PERatio: 10.88, Price: 1.29, Beta: 1.12, Rating: model.RatingStrongBuy, Confidence: 88},
	{Symbol: "KPT.TO", Name: "KP Tissue Inc", Country: "Canada", Region: "North America", Sector: "Consumer non-durables", DividendYield: 7.71, PayoutRatio: 81, MarketCap: 0.09, PERatio: 21.08, Price: 9.34, Beta: 0.89, Rating: model.RatingHold, Confidence: 73},
	{Symbol: "SGY.TO", Name: "Surge Energy Inc", Country: "Canada", Region: "North America", Sector: "Energy minerals", DividendYield: 7.66, PayoutRatio: 87, MarketCap: 0.67, PERatio: 15.26, Price: 6.79, Beta: 1.35, Rating: model.RatingStrongBuy, Confidence: 91},
	{Symbol: "FRU.TO", Name: "Freehold Royalties Ltd", Country: "Canada", Region: "North America", Sector: "Miscellaneous", DividendYield: 7.56, PayoutRatio: 83, MarketCap: 2.34, PERatio: 18.76, Price: 14.29, Beta: 1.02, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "GEI.TO", Name: "Gibson Energy Inc", Country: "Canada", Region: "North America", Sector: "Distribution services", DividendYield: 7.41, PayoutRatio: 79, MarketCap: 3.8, PERatio: 25.40, Price: 23.22, Beta: 0.98, Rating: model.RatingBuy, Confidence: 80},
	{Symbol: "MKP.TO", Name: "MCAN Mortgage Corporation", Country: "Canada", Region: "North America", Sector: "Finance", DividendYield: 7.36, PayoutRatio: 77, MarketCap: 0.9, PERatio: 13.45, Price: 22.27, Beta: 0.91, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "DE.TO", Name: "Decisive Dividend Corp", Country: "Canada", Region: "North America", Sector: "Producer manufacturing", DividendYield: 7.30, PayoutRatio: 85, MarketCap: 0.15, PERatio: 26.93, Price: 7.40, Beta: 1.18, Rating: model.RatingBuy, Confidence: 81},
	{Symbol: "WCP.TO", Name: "Whitecap Resources Inc", Country: "Canada", Region: "North America", Sector: "Energy minerals", DividendYield: 6.95, PayoutRatio: 82, MarketCap: 12.93, PERatio: 9.02, Price: 10.50, Beta: 1.28, Rating: model.RatingStrongBuy, Confidence: 92},
	{Symbol: "FSZ.TO", Name: "Fiera Capital Corporation", Country: "Canada", Region: "North America", Sector: "Finance", DividendYield: 6.95, PayoutRatio: 74, MarketCap: 0.66, PERatio: 21.44, Price: 6.22, Beta: 1.05, Rating: model.RatingHold, Confidence: 75},
	{Symbol: "PIF.TO", Name: "Polaris Renewable Energy Inc", Country: "Canada", Region: "North America", Sector: "Utilities", DividendYield: 6.78, PayoutRatio: 89, MarketCap: 0.27, PERatio: 0, Price: 12.67, Beta: 0.85, Rating: model.RatingStrongBuy, Confidence: 87},
	{Symbol: "IPH.AX", Name: "IPH Ltd", Country: "Australia", Region: "Oceania", Sector: "Commercial services", DividendYield: 11.24, PayoutRatio: 92, MarketCap: 0.94, PERatio: 14.01, Price: 3.60, Beta: 1.15, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "RHI.AX", Name: "Red Hill Minerals Ltd", Country: "Australia", Region: "Oceania", Sector: "Non-energy minerals", DividendYield: 10.48, PayoutRatio: 95, MarketCap: 0.24, PERatio: 26.51, Price: 3.77, Beta: 1.35, Rating: model.RatingNeutral, Confidence: 68},
	{Symbol: "YAL.AX", Name: "Yancoal Australia Ltd", Country: "Australia", Region: "Oceania", Sector: "Energy minerals", DividendYield: 10.28, PayoutRatio: 88, MarketCap: 7.47, PERatio: 7.79, Price: 5.66, Beta: 1.42, Rating: model.RatingBuy, Confidence: 79},
	{Symbol: "LFG.AX", Name: "Liberty Financial Group Ltd", Country: "Australia", Region: "Oceania", Sector: "Finance", DividendYield: 9.81, PayoutRatio: 85, MarketCap: 1.22, PERatio: 9.17, Price: 4.02, Beta: 1.08, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "MMS.AX", Name: "Mcmillan Shakespeare Limited", Country: "Australia", Region: "Oceania", Sector: "Finance", DividendYield: 9.34, PayoutRatio: 82, MarketCap: 1.1, PERatio: 11.64, Price: 15.85, Beta: 1.12, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "EVO.AX", Name: "Embark Early Education Limited", Country: "Australia", Region: "Oceania", Sector: "Consumer services", DividendYield: 9.16, PayoutRatio: 87, MarketCap: 0.12, PERatio: 12.45, Price: 0.655, Beta: 0.95, Rating: model.RatingStrongBuy, Confidence: 88},
	{Symbol: "TWE.AX", Name: "Treasury Wine Estates Limited", Country: "Australia", Region: "Oceania", Sector: "Consumer non-durables", DividendYield: 9.03, PayoutRatio: 79, MarketCap: 4.65, PERatio: 10.75, Price: 5.76, Beta: 1.02, Rating: model.RatingBuy, Confidence: 81},
	{Symbol: "FWD.AX", Name: "Fleetwood Limited", Country: "Australia", Region: "Oceania", Sector: "Consumer durables", DividendYield: 9.03, PayoutRatio: 84, MarketCap: 0.26, PERatio: 18.41, Price: 2.77, Beta: 1.25, Rating: model.RatingStrongBuy, Confidence: 89},
	{Symbol: "SVR.AX", Name: "Solvar Limited", Country: "Australia", Region: "Oceania", Sector: "Finance", DividendYield: 8.97, PayoutRatio: 81, MarketCap: 0.30, PERatio: 10.22, Price: 1.560, Beta: 1.18, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "KSL.AX", Name: "Kina Securities Ltd", Country: "Australia", Region: "Oceania", Sector: "Finance", DividendYield: 8.54, PayoutRatio: 78, MarketCap: 0.36, PERatio: 7.97, Price: 1.230, Beta: 1.05, Rating: model.RatingStrongBuy, Confidence: 87},
	{Symbol: "GEM.AX", Name: "G8 Education Limited", Country: "Australia", Region: "Oceania", Sector: "Consumer services", DividendYield: 8.46, PayoutRatio: 83, MarketCap: 0.50, PERatio: 7.44, Price: 0.650, Beta: 0.98, Rating: model.RatingBuy, Confidence: 80},
	{Symbol: "BFL.AX", Name: "BSP Financial Group Ltd", Country: "Australia", Region: "Oceania", Sector: "Finance", DividendYield: 8.25, PayoutRatio: 76, MarketCap: 3.58, PERatio: 8.50, Price: 7.67, Beta: 0.92, Rating: model.RatingNeutral, Confidence: 71},
	{Symbol: "ALX.AX", Name: "Atlas Arteria", Country: "Australia", Region: "Oceania", Sector: "Transportation", DividendYield: 8.20, PayoutRatio: 89, MarketCap: 7.08, PERatio: 30.25, Price: 4.88, Beta: 1.35, Rating: model.RatingNeutral, Confidence: 69},
	{Symbol: "HLO.AX", Name: "Helloworld Travel Ltd", Country: "Australia", Region: "Oceania", Sector: "Consumer services", DividendYield: 8.02, PayoutRatio: 81, MarketCap: 0.29, PERatio: 9.67, Price: 1.745, Beta: 1.15, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "CAF.AX", Name: "Centrepoint Alliance Limited", Country: "Australia", Region: "Oceania", Sector: "Miscellaneous", DividendYield: 8.00, PayoutRatio: 79, MarketCap: 0.08, PERatio: 15.63, Price: 0.375, Beta: 1.08, Rating: model.RatingStrongBuy, Confidence: 86},
	{Symbol: "NHC.AX", Name: "New Hope Corporation Limited", Country: "Australia", Region: "Oceania", Sector: "Energy minerals", DividendYield: 7.96, PayoutRatio: 86, MarketCap: 3.6, PERatio: 8.66, Price: 4.27, Beta: 1.22, Rating: model.RatingNeutral, Confidence: 70},
	{Symbol: "SMR.AX", Name: "Stanmore Resources Ltd", Country: "Australia", Region: "Oceania", Sector: "Energy minerals", DividendYield: 7.96, PayoutRatio: 88, MarketCap: 1.97, PERatio: 506.98, Price: 2.18, Beta: 1.45, Rating: model.RatingStrongBuy, Confidence: 88},
	{Symbol: "DSK.AX", Name: "Dusk Group Ltd", Country: "Australia", Region: "Oceania", Sector: "Retail trade", DividendYield: 7.95, PayoutRatio: 82, MarketCap: 0.05, PERatio: 13.13, Price: 0.880, Beta: 1.12, Rating: model.RatingStrongBuy, Confidence: 89},
	{Symbol: "ING.AX", Name: "Inghams Group Ltd", Country: "Australia", Region: "Oceania", Sector: "Process industries", DividendYield: 7.92, PayoutRatio: 84, MarketCap: 0.89, PERatio: 10.02, Price: 2.40, Beta: 1.05, Rating: model.RatingNeutral, Confidence: 72},
	{Symbol: "MFG.AX", Name: "Magellan Financial Group Ltd", Country: "Australia", Region: "Oceania", Sector: "Finance", DividendYield: 7.81, PayoutRatio: 87, MarketCap: 1.59, PERatio: 10.09, Price: 9.35, Beta: 1.18, Rating: model.RatingNeutral, Confidence: 74},
	{Symbol: "000858.SZ", Name: "Wuliangye Yibin Ltd", Country: "China", Region: "Asia", Sector: "Consumer Staples", DividendYield: 5.25, PayoutRatio: 45, MarketCap: 45.2, PERatio: 18.5, Price: 168.50, Beta: 0.95, Rating: model.RatingBuy, Confidence: 85},
	{Symbol: "6371.T", Name: "Tsubakimoto Chain", Country: "Japan", Region: "Asia", Sector: "Industrials", DividendYield: 3.73, PayoutRatio: 38, MarketCap: 2.1, PERatio: 15.2, Price: 2840, Beta: 0.88, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "2009.T", Name: "Torigoe", Country: "Japan", Region: "Asia", Sector: "Consumer Services", DividendYield: 3.96, PayoutRatio: 42, MarketCap: 1.8, PERatio: 16.8, Price: 2450, Beta: 0.91, Rating: model.RatingHold, Confidence: 78},
	{Symbol: "9628.T", Name: "SAN Holdings", Country: "Japan", Region: "Asia", Sector: "Technology", DividendYield: 3.81, PayoutRatio: 35, MarketCap: 3.2, PERatio: 22.1, Price: 1850, Beta: 1.02, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "4783.T", Name: "NCD", Country: "Japan", Region: "Asia", Sector: "Healthcare", DividendYield: 4.67, PayoutRatio: 48, MarketCap: 1.5, PERatio: 18.9, Price: 3200, Beta: 0.85, Rating: model.RatingBuy, Confidence: 86},
	{Symbol: "600741.SS", Name: "HUAYU Automotive Systems", Country: "China", Region: "Asia", Sector: "Consumer Discretionary", DividendYield: 3.84, PayoutRatio: 41, MarketCap: 28.5, PERatio: 12.3, Price: 24.80, Beta: 1.08, Rating: model.RatingHold, Confidence: 79},
	{Symbol: "603368.SS", Name: "Guangxi LiuYao Group", Country: "China", Region: "Asia", Sector: "Healthcare", DividendYield: 3.88, PayoutRatio: 44, MarketCap: 15.2, PERatio: 16.7, Price: 18.90, Beta: 0.92, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "9769.T", Name: "Gakkyusha Ltd", Country: "Japan", Region: "Asia", Sector: "Consumer Services", DividendYield: 4.51, PayoutRatio: 52, MarketCap: 0.8, PERatio: 14.2, Price: 1650, Beta: 0.78, Rating: model.RatingBuy, Confidence: 87},
	{Symbol: "600757.SS", Name: "Changjiang Publishing & Media", Country: "China", Region: "Asia", Sector: "Communication Services", DividendYield: 4.57, PayoutRatio: 49, MarketCap: 8.9, PERatio: 19.8, Price: 12.45, Beta: 1.05, Rating: model.RatingHold, Confidence: 76},
	{Symbol: "005180.KS", Name: "Binggrae", Country: "South Korea", Region: "Asia", Sector: "Consumer Staples", DividendYield: 4.37, PayoutRatio: 46, MarketCap: 12.3, PERatio: 17.2, Price: 45800, Beta: 0.89, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "SHELL.AS", Name: "Shell PLC", Country: "Netherlands", Region: "Europe", Sector: "Energy", DividendYield: 4.20, PayoutRatio: 58, MarketCap: 185.2, PERatio: 12.4, Price: 28.50, Beta: 1.15, Rating: model.RatingBuy, Confidence: 86},
	{Symbol: "BP.L", Name: "BP PLC", Country: "United Kingdom", Region: "Europe", Sector: "Energy", DividendYield: 4.80, PayoutRatio: 62, MarketCap: 95.8, PERatio: 11.8, Price: 4.25, Beta: 1.22, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "ULVR.L", Name: "Unilever PLC", Country: "United Kingdom", Region: "Europe", Sector: "Consumer Staples", DividendYield: 3.90, PayoutRatio: 55, MarketCap: 124.5, PERatio: 18.2, Price: 48.90, Beta: 0.85, Rating: model.RatingBuy, Confidence: 88},
	{Symbol: "AZN.L", Name: "AstraZeneca PLC", Country: "United Kingdom", Region: "Europe", Sector: "Healthcare", DividendYield: 2.80, PayoutRatio: 48, MarketCap: 185.6, PERatio: 22.1, Price: 120.40, Beta: 0.78, Rating: model.RatingBuy, Confidence: 91},
	{Symbol: "NESN.SW", Name: "Nestle SA", Country: "Switzerland", Region: "Europe", Sector: "Consumer Staples", DividendYield: 2.40, PayoutRatio: 52, MarketCap: 312.8, PERatio: 19.8, Price: 108.50, Beta: 0.72, Rating: model.RatingBuy, Confidence: 93},
	{Symbol: "ROG.SW", Name: "Roche Holding AG", Country: "Switzerland", Region: "Europe", Sector: "Healthcare", DividendYield: 3.60, PayoutRatio: 61, MarketCap: 245.2, PERatio: 16.9, Price: 285.40, Beta: 0.81, Rating: model.RatingBuy, Confidence: 89},
	{Symbol: "ASML.AS", Name: "ASML Holding NV", Country: "Netherlands", Region: "Europe", Sector: "Technology", DividendYield: 1.80, PayoutRatio: 35, MarketCap: 285.6, PERatio: 28.4, Price: 685.20, Beta: 1.02, Rating: model.RatingBuy, Confidence: 94},
	{Symbol: "SAP.DE", Name: "SAP SE", Country: "Germany", Region: "Europe", Sector: "Technology", DividendYield: 2.20, PayoutRatio: 42, MarketCap: 168.9, PERatio: 24.6, Price: 142.80, Beta: 0.95, Rating: model.RatingBuy, Confidence: 87},
	{Symbol: "SAN.PA", Name: "Sanofi SA", Country: "France", Region: "Europe", Sector: "Healthcare", DividendYield: 4.10, PayoutRatio: 58, MarketCap: 118.2, PERatio: 14.8, Price: 92.40, Beta: 0.88, Rating: model.RatingHold, Confidence: 81},
	{Symbol: "OR.PA", Name: "L'Oreal SA", Country: "France", Region: "Europe", Sector: "Consumer Staples", DividendYield: 1.90, PayoutRatio: 41, MarketCap: 245.8, PERatio: 26.3, Price: 458.20, Beta: 0.76, Rating: model.RatingBuy, Confidence: 85},
	{Symbol: "RIO.L", Name: "Rio Tinto PLC", Country: "United Kingdom", Region: "Europe", Sector: "Basic Materials", DividendYield: 6.80, PayoutRatio: 72, MarketCap: 98.4, PERatio: 8.9, Price: 48.20, Beta: 1.18, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "BHP.L", Name: "BHP Group PLC", Country: "United Kingdom", Region: "Europe", Sector: "Basic Materials", DividendYield: 5.90, PayoutRatio: 68, MarketCap: 142.6, PERatio: 11.2, Price: 24.80, Beta: 1.25, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "NG.L", Name: "National Grid PLC", Country: "United Kingdom", Region: "Europe", Sector: "Utilities", DividendYield: 5.20, PayoutRatio: 78, MarketCap: 48.9, PERatio: 15.6, Price: 13.45, Beta: 0.65, Rating: model.RatingBuy, Confidence: 88},
	{Symbol: "TTE.PA", Name: "TotalEnergies SE", Country: "France", Region: "Europe", Sector: "Energy", DividendYield: 5.80, PayoutRatio: 65, MarketCap: 142.8, PERatio: 10.8, Price: 58.40, Beta: 1.08, Rating: model.RatingBuy, Confidence: 85},
	{Symbol: "ENB.TO", Name: "Enbridge Inc", Country: "Canada", Region: "North America", Sector: "Energy", DividendYield: 6.40, PayoutRatio: 75, MarketCap: 98.2, PERatio: 18.2, Price: 48.90, Beta: 0.92, Rating: model.RatingBuy, Confidence: 87},
	{Symbol: "TRP.TO", Name: "TC Energy Corporation", Country: "Canada", Region: "North America", Sector: "Energy", DividendYield: 5.90, PayoutRatio: 82, MarketCap: 68.4, PERatio: 16.8, Price: 65.20, Beta: 0.88, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "BCE.TO", Name: "BCE Inc", Country: "Canada", Region: "North America", Sector: "Communication Services", DividendYield: 6.20, PayoutRatio: 89, MarketCap: 54.8, PERatio: 19.4, Price: 58.40, Beta: 0.78, Rating: model.RatingHold, Confidence: 79},
	{Symbol: "T.TO", Name: "TELUS Corporation", Country: "Canada", Region: "North America", Sector: "Communication Services", DividendYield: 5.80, PayoutRatio: 85, MarketCap: 38.9, PERatio: 22.1, Price: 26.80, Beta: 0.82, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "RY.TO", Name: "Royal Bank of Canada", Country: "Canada", Region: "North America", Sector: "Financial Services", DividendYield: 4.20, PayoutRatio: 52, MarketCap: 185.6, PERatio: 12.8, Price: 132.40, Beta: 0.95, Rating: model.RatingBuy, Confidence: 91},
	{Symbol: "TD.TO", Name: "Toronto-Dominion Bank", Country: "Canada", Region: "North America", Sector: "Financial Services", DividendYield: 4.80, PayoutRatio: 58, MarketCap: 156.8, PERatio: 13.2, Price: 84.60, Beta: 0.98, Rating: model.RatingBuy, Confidence: 89},
	{Symbol: "FMG.AX", Name: "Fortescue Metals Group", Country: "Australia", Region: "Oceania", Sector: "Basic Materials", DividendYield: 8.90, PayoutRatio: 78, MarketCap: 45.2, PERatio: 8.9, Price: 18.40, Beta: 1.45, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "WDS.AX", Name: "Woodside Energy Ltd", Country: "Australia", Region: "Oceania", Sector: "Energy", DividendYield: 7.20, PayoutRatio: 82, MarketCap: 32.8, PERatio: 10.4, Price: 25.84, Beta: 1.35, Rating: model.RatingBuy, Confidence: 79},
	{Symbol: "BHP.AX", Name: "BHP Group Ltd", Country: "Australia", Region: "Oceania", Sector: "Basic Materials", DividendYield: 6.80, PayoutRatio: 75, MarketCap: 142.6, PERatio: 11.2, Price: 45.20, Beta: 1.28, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "RIO.AX", Name: "Rio Tinto Ltd", Country: "Australia", Region: "Oceania", Sector: "Basic Materials", DividendYield: 6.20, PayoutRatio: 72, MarketCap: 38.9, PERatio: 9.8, Price: 118.40, Beta: 1.22, Rating: model.RatingBuy, Confidence: 86},
	{Symbol: "TLS.AX", Name: "Telstra Corporation Ltd", Country: "Australia", Region: "Oceania", Sector: "Communication Services", DividendYield: 4.80, PayoutRatio: 78, MarketCap: 48.2, PERatio: 16.2, Price: 3.85, Beta: 0.85, Rating: model.RatingBuy, Confidence: 88},
	{Symbol: "CBA.AX", Name: "Commonwealth Bank", Country: "Australia", Region: "Oceania", Sector: "Financial Services", DividendYield: 4.20, PayoutRatio: 68, MarketCap: 185.6, PERatio: 14.8, Price: 108.90, Beta: 0.92, Rating: model.RatingBuy, Confidence: 92},
	{Symbol: "WBC.AX", Name: "Westpac Banking Corp", Country: "Australia", Region: "Oceania", Sector: "Financial Services", DividendYield: 5.60, PayoutRatio: 78, MarketCap: 98.4, PERatio: 12.4, Price: 26.80, Beta: 1.05, Rating: model.RatingBuy, Confidence: 85},
	{Symbol: "ANZ.AX", Name: "ANZ Group Holdings", Country: "Australia", Region: "Oceania", Sector: "Financial Services", DividendYield: 5.40, PayoutRatio: 76, MarketCap: 78.9, PERatio: 11.8, Price: 28.45, Beta: 1.08, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "NAB.AX", Name: "National Australia Bank", Country: "Australia", Region: "Oceania", Sector: "Financial Services", DividendYield: 5.20, PayoutRatio: 74, MarketCap: 89.2, PERatio: 12.1, Price: 32.80, Beta: 1.02, Rating: model.RatingBuy, Confidence: 87},
	{Symbol: "005930.KS", Name: "Samsung Electronics", Country: "South Korea", Region: "Asia", Sector: "Technology", DividendYield: 2.80, PayoutRatio: 35, MarketCap: 325.8, PERatio: 15.2, Price: 68500, Beta: 1.18, Rating: model.RatingBuy, Confidence: 91},
	{Symbol: "000270.KS", Name: "Kia Corporation", Country: "South Korea", Region: "Asia", Sector: "Consumer Discretionary", DividendYield: 3.20, PayoutRatio: 25, MarketCap: 28.9, PERatio: 8.9, Price: 78500, Beta: 1.25, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "005380.KS", Name: "Hyundai Motor", Country: "South Korea", Region: "Asia", Sector: "Consumer Discretionary", DividendYield: 2.90, PayoutRatio: 22, MarketCap: 42.1, PERatio: 10.2, Price: 185000, Beta: 1.15, Rating: model.RatingBuy, Confidence: 86},
	{Symbol: "051910.KS", Name: "LG Chem", Country: "South Korea", Region: "Asia", Sector: "Basic Materials", DividendYield: 2.40, PayoutRatio: 28, MarketCap: 18.5, PERatio: 12.8, Price: 485000, Beta: 1.35, Rating: model.RatingHold, Confidence: 78},
	{Symbol: "028260.KS", Name: "Samsung SDI", Country: "South Korea", Region: "Asia", Sector: "Technology", DividendYield: 1.80, PayoutRatio: 20, MarketCap: 24.8, PERatio: 18.9, Price: 285000, Beta: 1.42, Rating: model.RatingBuy, Confidence: 89},
	{Symbol: "7203.T", Name: "Toyota Motor Corp", Country: "Japan", Region: "Asia", Sector: "Consumer Discretionary", DividendYield: 2.60, PayoutRatio: 32, MarketCap: 285.6, PERatio: 12.4, Price: 2850, Beta: 0.95, Rating: model.RatingBuy, Confidence: 93},
	{Symbol: "6758.T", Name: "Sony Group Corp", Country: "Japan", Region: "Asia", Sector: "Technology", DividendYield: 1.90, PayoutRatio: 25, MarketCap: 125.8, PERatio: 16.8, Price: 12850, Beta: 1.08, Rating: model.RatingBuy, Confidence: 87},
	{Symbol: "8306.T", Name: "Mitsubishi UFJ Financial", Country: "Japan", Region: "Asia", Sector: "Financial Services", DividendYield: 3.40, PayoutRatio: 42, MarketCap: 98.4, PERatio: 12.1, Price: 1850, Beta: 1.02, Rating: model.RatingBuy, Confidence: 85},
	{Symbol: "005930.KS", Name: "SK Hynix", Country: "South Korea", Region: "Asia", Sector: "Technology", DividendYield: 1.60, PayoutRatio: 18, MarketCap: 42.8, PERatio: 14.2, Price: 125000, Beta: 1.52, Rating: model.RatingBuy, Confidence: 88},
	{Symbol: "000660.KS", Name: "LG Electronics", Country: "South Korea", Region: "Asia", Sector: "Consumer Discretionary", DividendYield: 2.20, PayoutRatio: 28, MarketCap: 15.2, PERatio: 11.8, Price: 68500, Beta: 1.18, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "ASML.AS", Name: "ASML Holding NV", Country: "Netherlands", Region: "Europe", Sector: "Technology", DividendYield: 1.80, PayoutRatio: 35, MarketCap: 285.6, PERatio: 28.4, Price: 685.20, Beta: 1.02, Rating: model.RatingBuy, Confidence: 94},
	{Symbol: "LVMH.PA", Name: "LVMH Moet Hennessy", Country: "France", Region: "Europe", Sector: "Consumer Discretionary", DividendYield: 1.60, PayoutRatio: 38, MarketCap: 385.2, PERatio: 24.8, Price: 725.40, Beta: 0.85, Rating: model.RatingBuy, Confidence: 92},
	{Symbol: "MC.PA", Name: "LVMH SE", Country: "France", Region: "Europe", Sector: "Consumer Discretionary", DividendYield: 1.40, PayoutRatio: 32, MarketCap: 245.8, PERatio: 26.3, Price: 458.20, Beta: 0.88, Rating: model.RatingBuy, Confidence: 89},
	{Symbol: "NVO", Name: "Novo Nordisk A/S", Country: "Denmark", Region: "Europe", Sector: "Healthcare", DividendYield: 1.20, PayoutRatio: 45, MarketCap: 425.8, PERatio: 32.1, Price: 185.40, Beta: 0.72, Rating: model.RatingBuy, Confidence: 95},
	{Symbol: "NOVO-B.CO", Name: "Novo Nordisk B A/S", Country: "Denmark", Region: "Europe", Sector: "Healthcare", DividendYield: 1.10, PayoutRatio: 42, MarketCap: 385.6, PERatio: 29.8, Price: 825.00, Beta: 0.75, Rating: model.RatingBuy, Confidence: 93},
	{Symbol: "UNA.AS", Name: "Unilever NV", Country: "Netherlands", Region: "Europe", Sector: "Consumer Staples", DividendYield: 3.90, PayoutRatio: 65, MarketCap: 124.5, PERatio: 18.2, Price: 48.90, Beta: 0.85, Rating: model.RatingBuy, Confidence: 88},
	{Symbol: "ASML.AS", Name: "ASML Holding NV", Country: "Netherlands", Region: "Europe", Sector: "Technology", DividendYield: 1.80, PayoutRatio: 35, MarketCap: 285.6, PERatio: 28.4, Price: 685.20, Beta: 1.02, Rating: model.RatingBuy, Confidence: 94},
	{Symbol: "ADYEN.AS", Name: "Adyen NV", Country: "Netherlands", Region: "Europe", Sector: "Technology", DividendYield: 0.00, PayoutRatio: 0, MarketCap: 45.2, PERatio: 45.8, Price: 1450.00, Beta: 1.35, Rating: model.RatingHold, Confidence: 78},
	{Symbol: "PRX.AS", Name: "Prosus NV", Country: "Netherlands", Region: "Europe", Sector: "Technology", DividendYield: 0.00, PayoutRatio: 0, MarketCap: 125.8, PERatio: 12.4, Price: 48.20, Beta: 1.18, Rating: model.RatingBuy, Confidence: 82},
	{Symbol: "INGA.AS", Name: "ING Groep NV", Country: "Netherlands", Region: "Europe", Sector: "Financial Services", DividendYield: 5.20, PayoutRatio: 58, MarketCap: 58.9, PERatio: 11.2, Price: 15.80, Beta: 1.25, Rating: model.RatingBuy, Confidence: 84},
	{Symbol: "MT.AS", Name: "ArcelorMittal SA", Country: "Luxembourg", Region: "Europe", Sector: "Basic Materials", DividendYield: 4.80, PayoutRatio: 28, MarketCap: 28.5, PERatio: 5.8, Price: 28.40, Beta: 1.45, Rating: model.RatingBuy, Confidence: 81},
	{Symbol: "HSBA.L", Name: "HSBC Holdings PLC", Country: "United Kingdom", Region: "Europe", Sector: "Financial Services", DividendYield: 5.60, PayoutRatio: 48, MarketCap: 145.2, PERatio: 8.9, Price: 6.85, Beta: 1.15, Rating: model.RatingBuy, Confidence: 86},
	{Symbol: "BP.L", Name: "BP PLC", Country: "United Kingdom", Region: "Europe", Sector: "Energy", DividendYield: 4.80, PayoutRatio: 62, MarketCap: 95.8, PERatio: 11.8, Price: 4.25, Beta: 1.22, Rating: model.RatingBuy, Confidence: 83},
	{Symbol: "SHEL.L", Name: "Shell PLC", Country: "United Kingdom", Region: "Europe", Sector: "Energy", DividendYield: 4.20, PayoutRatio: 58, MarketCap: 185.2, PERatio: 12.4, Price: 28.50, Beta: 1.15, Rating: model.RatingBuy, Confidence: 86},
	{Symbol: "AZN.L", Name: "AstraZeneca PLC", Country: "United Kingdom", Region: "Europe", Sector: "Healthcare", DividendYield: 2.80, PayoutRatio: 48, MarketCap: 185.6, PERatio: 22.1, Price: 120.40, Beta: 0.78, Rating: model.RatingBuy, Confidence: 91},
	{Symbol: "ULVR.L", Name: "Unilever PLC", Country: "United Kingdom", Region: "Europe", Sector: "Consumer Staples", DividendYield: 3.90, PayoutRatio: 65, MarketCap: 124.5, PERatio: 18.2, Price: 48.90, Beta: 0.85, Rating: model.RatingBuy, Confidence: 88},
	{Symbol: "DGE.L", Name: "Diageo PLC", Country: "United Kingdom", Region: "Europe", Sector: "Consumer Staples", DividendYield: 2.40, PayoutRatio: 58, MarketCap: 78.9, PERatio: 19.8, Price: 35.20, Beta: 0.82, Rating: model.RatingBuy, Confidence: 87},
	{Symbol: "REL.L", Name: "RELX PLC", Country: "United Kingdom", Region: "Europe", Sector: "Industrials", DividendYield: 2.10, PayoutRatio: 52, MarketCap: 68.4, PERatio: 24.6, Price: 32.80, Beta: 0.75, Rating: model.RatingBuy, Confidence: 89},
	{Symbol: "BT-A.L", Name: "BT Group PLC", Country: "United Kingdom", Region: "Europe", Sector: "Communication Services", DividendYield: 5.80, PayoutRatio: 68, MarketCap: 18.9, PERatio: 12.4, Price: 1.85, Beta: 1.02, Rating: model.RatingHold, Confidence: 76},
	{Symbol: "VOD.L", Name: "Vodafone Group PLC", Country: "United Kingdom", Region: "Europe", Sector: "Communication Services", DividendYield: 6.20, PayoutRatio: 85, MarketCap: 28.5, PERatio: 9.8, Price: 0.95, Beta: 1.18, Rating: model.RatingHold, Confidence: 72},
	{Symbol: "IAG.L", Name: "International Airlines Group", Country: "United Kingdom", Region: "Europe", Sector: "Industrials", DividendYield: 0.00, PayoutRatio: 0, MarketCap: 12.8, PERatio: 8.2, Price: 2.45, Beta: 1.65, Rating: model.RatingSell, Confidence: 58},}
