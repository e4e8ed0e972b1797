package inventory

// FindFlightsQuery selects the single service between two airports together
// with the flights departing inside the search window that have enough
// available seats in at least one of the requested cabin classes.
const FindFlightsQuery = `
	query findFlights(
	  $origin: String!
	  $destination: String!
	  $from_time: timestamptz!
	  $to_time: timestamptz!
	  $passengers: bigint! = 1
	  $cabin_classes: [String!]! = ["E", "B", "F"]
	) {
	  service(
	    where: {
	      origin_airport: { iata_code: { _eq: $origin } }
	      destination_airport: { iata_code: { _eq: $destination } }
	    }
	  ) {
	    id
	    origin_airport {
	      ...airportFragment
	    }
	    destination_airport {
	      ...airportFragment
	    }
	    flights(
	      where: {
	        departure_time: { _gte: $from_time, _lte: $to_time }
	        available_seats_counts: { available_seats_count: { _gte: $passengers } }
	      }
	    ) {
	      id
	      departure_terminal
	      departure_time
	      arrival_terminal
	      arrival_time
	      aircraft_model {
	        icao_code
	        iata_code
	        name
	      }
	      available_seats_counts(
	        where: {
	          cabin_class: { _in: $cabin_classes }
	          available_seats_count: { _gte: $passengers }
	        }
	      ) {
	        cabin_class
	        total_seats_count
	        available_seats_count
	      }
	    }
	  }
	}

	fragment airportFragment on airport {
	  iata_code
	  icao_code
	  name
	  subdivision_code
	  city
	  geo_location
	}
`

// GetFlightQuery selects a flight by primary key with its owning service.
const GetFlightQuery = `
	query getFlight($flight_id: uuid!) {
	  flight_by_pk(id: $flight_id) {
	    id
	    service {
	      id
	      origin_airport {
	        ...airportFragment
	      }
	      destination_airport {
	        ...airportFragment
	      }
	    }
	    departure_terminal
	    departure_time
	    arrival_terminal
	    arrival_time
	    aircraft_model {
	      iata_code
	      icao_code
	      name
	    }
	    available_seats_counts {
	      cabin_class
	      total_seats_count
	      available_seats_count
	    }
	  }
	}

	fragment airportFragment on airport {
	  iata_code
	  icao_code
	  name
	  subdivision_code
	  city
	  geo_location
	}
`

// GetFlightSeatsQuery selects a flight's seat map and booked seats by
// primary key.
const GetFlightSeatsQuery = `
	query getFlightSeats($flight_id: uuid!) {
	  flight_by_pk(id: $flight_id) {
	    id
	    aircraft_model {
	      icao_code
	      iata_code
	      name
	      seat_maps {
	        cabin_class
	        start_row
	        end_row
	        column_layout
	      }
	    }
	    booked_seats {
	      seat_row
	      seat_column
	    }
	  }
	}
`
