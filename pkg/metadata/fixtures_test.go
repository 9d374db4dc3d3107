package metadata

const quickBirdMultiIMD = `version = "AA";
generationTime = 2009-04-01T08:12:44.000000Z;
productOrderId = "005647413010_01_P001";
numberOfLooks = 1;
BEGIN_GROUP = BAND_B
	ULLon = 2.20122222;
	ULLat = 48.95233102;
	absCalFactor = 1.604120e-02;
	effectiveBandwidth = 6.800000e-02;
END_GROUP = BAND_B
BEGIN_GROUP = BAND_G
	absCalFactor = 1.438470e-02;
	effectiveBandwidth = 9.900000e-02;
END_GROUP = BAND_G
BEGIN_GROUP = BAND_R
	absCalFactor = 1.267350e-02;
	effectiveBandwidth = 7.100000e-02;
END_GROUP = BAND_R
BEGIN_GROUP = BAND_N
	absCalFactor = 1.542420e-02;
	effectiveBandwidth = 1.140000e-01;
END_GROUP = BAND_N
outputFormat = "GeoTIFF";
BEGIN_GROUP = IMAGE_1
	satId = "QB02";
	firstLineTime = 2009-03-15T10:30:00.000000Z;
	avgLineRate = 1724.13;
	meanSunAz = 153.6;
	meanSunEl = 45.2;
END_GROUP = IMAGE_1
END;
`

const quickBirdPanIMD = `version = "AA";
BEGIN_GROUP = BAND_P
	absCalFactor = 6.447600e-02;
	effectiveBandwidth = 3.980000e-01;
END_GROUP = BAND_P
BEGIN_GROUP = IMAGE_1
	firstLineTime = 2009-03-15T10:30:05.500000Z;
	meanSunEl = 45.3;
END_GROUP = IMAGE_1
END;
`

const geoEye1IMD = `BEGIN_GROUP = productInformation
	productCreationDateTime = 2010-06-02T11:23:13.000000Z;
END_GROUP = productInformation
BEGIN_GROUP = bandSpecificInformation
	bandNumber = 1;
	gain = 0.0166;
	offset = -1.2;
END_GROUP = bandSpecificInformation;
BEGIN_GROUP = bandSpecificInformation
	bandNumber = 2;
	gain = 0.0161;
	offset = 0.0;
END_GROUP = bandSpecificInformation;
BEGIN_GROUP = bandSpecificInformation
	bandNumber = 3;
	gain = 0.0154;
	offset = 0.5;
END_GROUP = bandSpecificInformation;
BEGIN_GROUP = bandSpecificInformation
	bandNumber = 4;
	gain = 0.0158;
	offset = 0.25;
END_GROUP = bandSpecificInformation;
BEGIN_GROUP = bandSpecificInformation
	bandNumber = 5;
	gain = 0.0165;
	offset = 0;
END_GROUP = bandSpecificInformation;
BEGIN_GROUP = acquisition
	firstLineAcquisitionDateTime = 2010-05-30T10:47:21.312000Z;
	firstLineElevationAngle = 61.46;
END_GROUP = acquisition
END;
`

const spotMultiDIMAP = `<?xml version="1.0" encoding="UTF-8"?>
<Dimap_Document>
  <Product_Information>
    <IMAGING_DATE>2013-08-01</IMAGING_DATE>
    <IMAGING_TIME>10:41:09.5</IMAGING_TIME>
  </Product_Information>
  <Band_Solar_Irradiance>
    <BAND_ID>B0</BAND_ID>
    <GAIN>99.0</GAIN>
    <VALUE>1982.671954</VALUE>
  </Band_Solar_Irradiance>
  <Radiometric_Settings>
    <Band_Radiance>
      <BAND_ID>B0</BAND_ID>
      <GAIN>9.77</GAIN>
      <BIAS>0</BIAS>
    </Band_Radiance>
    <Band_Radiance>
      <BAND_ID>B1</BAND_ID>
      <GAIN>10.44</GAIN>
      <BIAS>0</BIAS>
    </Band_Radiance>
    <Band_Radiance>
      <BAND_ID>B2</BAND_ID>
      <GAIN>11.65</GAIN>
      <BIAS>0</BIAS>
    </Band_Radiance>
    <Band_Radiance>
      <BAND_ID>B3</BAND_ID>
      <GAIN>17.79</GAIN>
      <BIAS>0.5</BIAS>
    </Band_Radiance>
  </Radiometric_Settings>
  <Geometric_Data>
    <Located_Geometric_Values>
      <LOCATION_TYPE>TopLeft</LOCATION_TYPE>
      <Solar_Incidences>
        <SUN_ELEVATION>57.1</SUN_ELEVATION>
      </Solar_Incidences>
    </Located_Geometric_Values>
    <Located_Geometric_Values>
      <LOCATION_TYPE>Center</LOCATION_TYPE>
      <Solar_Incidences>
        <SUN_AZIMUTH>160.2</SUN_AZIMUTH>
        <SUN_ELEVATION>57.6</SUN_ELEVATION>
      </Solar_Incidences>
    </Located_Geometric_Values>
    <Located_Geometric_Values>
      <LOCATION_TYPE>CenterRight</LOCATION_TYPE>
      <Solar_Incidences>
        <SUN_ELEVATION>58.0</SUN_ELEVATION>
      </Solar_Incidences>
    </Located_Geometric_Values>
  </Geometric_Data>
</Dimap_Document>
`

const spotPanDIMAP = `<?xml version="1.0" encoding="UTF-8"?>
<Dimap_Document>
  <IMAGING_DATE>2013-08-01</IMAGING_DATE>
  <IMAGING_TIME>10:41:10</IMAGING_TIME>
  <Band_Radiance>
    <BAND_ID>P</BAND_ID>
    <GAIN>13.27</GAIN>
    <BIAS>0</BIAS>
  </Band_Radiance>
  <LOCATION_TYPE>Center</LOCATION_TYPE>
  <SUN_ELEVATION>57.7</SUN_ELEVATION>
  <LOCATION_TYPE>CenterRight</LOCATION_TYPE>
</Dimap_Document>
`

const pleiadesMultiDIMAP = `<?xml version="1.0" encoding="UTF-8"?>
<Dimap_Document>
  <IMAGING_DATE>2012-04-11</IMAGING_DATE>
  <IMAGING_TIME>10:52:31.4Z</IMAGING_TIME>
  <Radiometric_Settings>
    <BAND_ID>B0</BAND_ID>
    <Band_Radiance>
      <GAIN>9.38</GAIN>
      <BIAS>0</BIAS>
    </Band_Radiance>
    <BAND_ID>B1</BAND_ID>
    <Band_Radiance>
      <GAIN>9.34</GAIN>
      <BIAS>0</BIAS>
    </Band_Radiance>
    <BAND_ID>B2</BAND_ID>
    <Band_Radiance>
      <GAIN>10.46</GAIN>
      <BIAS>0</BIAS>
    </Band_Radiance>
    <BAND_ID>B3</BAND_ID>
    <Band_Radiance>
      <GAIN>15.81</GAIN>
      <BIAS>0</BIAS>
    </Band_Radiance>
  </Radiometric_Settings>
  <Located_Geometric_Values>
    <LOCATION_TYPE>Center</LOCATION_TYPE>
    <SUN_ELEVATION unit="deg">52.25</SUN_ELEVATION>
  </Located_Geometric_Values>
  <Located_Geometric_Values>
    <LOCATION_TYPE>Bottom Center</LOCATION_TYPE>
    <SUN_ELEVATION unit="deg">52.9</SUN_ELEVATION>
  </Located_Geometric_Values>
</Dimap_Document>
`

const rapidEyeXML = `<?xml version="1.0" encoding="UTF-8"?>
<re:EarthObservation xmlns:re="http://schemas.rapideye.de/products/productMetadataSensor">
  <gml:metaDataProperty>
    <re:EarthObservationMetaData>
      <eop:identifier>2011-07-13T103645_RE3_1B-NAC_8463712_140234</eop:identifier>
    </re:EarthObservationMetaData>
  </gml:metaDataProperty>
  <gml:using>
    <eop:EarthObservationEquipment>
      <eop:acquisitionParameters>
        <re:Acquisition>
          <hma:acquisitionDate>2011-07-13T10:36:45.234Z</hma:acquisitionDate>
          <ohr:illuminationElevationAngle uom="deg">58.41</ohr:illuminationElevationAngle>
        </re:Acquisition>
      </eop:acquisitionParameters>
    </eop:EarthObservationEquipment>
  </gml:using>
  <gml:resultOf>
    <re:bandSpecificMetadata><re:bandNumber>1</re:bandNumber><re:radiometricScaleFactor>0.009999999776482582</re:radiometricScaleFactor></re:bandSpecificMetadata>
    <re:bandSpecificMetadata><re:bandNumber>2</re:bandNumber><re:radiometricScaleFactor>0.01</re:radiometricScaleFactor></re:bandSpecificMetadata><re:bandSpecificMetadata><re:bandNumber>3</re:bandNumber><re:radiometricScaleFactor>0.02</re:radiometricScaleFactor></re:bandSpecificMetadata>
    <re:bandSpecificMetadata>
      <re:bandNumber>4</re:bandNumber>
      <re:radiometricScaleFactor>0.03</re:radiometricScaleFactor>
    </re:bandSpecificMetadata>
    <re:bandSpecificMetadata>
      <re:bandNumber>5</re:bandNumber>
      <re:radiometricScaleFactor>0.04</re:radiometricScaleFactor>
    </re:bandSpecificMetadata>
  </gml:resultOf>
</re:EarthObservation>
`
